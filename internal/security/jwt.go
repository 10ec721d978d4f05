package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mealmart/mealmart-go/internal/config"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// AccountClaims represents the JWT claims for an authenticated account
type AccountClaims struct {
	AccountID string      `json:"account_id"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Refresh   bool        `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair bundles the tokens issued on a successful authentication
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// JWTProvider handles JWT token generation and validation
type JWTProvider struct {
	secret               []byte
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	issuer               string
}

// NewJWTProvider creates a new JWTProvider instance
func NewJWTProvider(cfg *config.JWTConfig) *JWTProvider {
	return &JWTProvider{
		secret:               []byte(cfg.Secret),
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		issuer:               cfg.Issuer,
	}
}

// GenerateTokenPair issues an access and refresh token for an account
func (p *JWTProvider) GenerateTokenPair(account *entity.Account) (*TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(p.accessTokenDuration)

	access, err := p.sign(account, now, accessExpiry, false)
	if err != nil {
		return nil, err
	}
	refresh, err := p.sign(account, now, now.Add(p.refreshTokenDuration), true)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}, nil
}

func (p *JWTProvider) sign(account *entity.Account, now, expiresAt time.Time, refresh bool) (string, error) {
	claims := AccountClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		Refresh:   refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    p.issuer,
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ValidateToken parses and validates a token, returning its claims
func (p *JWTProvider) ValidateToken(tokenString string) (*AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccountClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
