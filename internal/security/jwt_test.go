package security

import (
	"testing"
	"time"

	"github.com/mealmart/mealmart-go/internal/config"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

func newTestJWTProvider(accessDuration time.Duration) *JWTProvider {
	return NewJWTProvider(&config.JWTConfig{
		Secret:               "test-secret-key-for-testing-purposes-only",
		AccessTokenDuration:  accessDuration,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "mealmart-test",
	})
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:    "65a10f0e8bcf",
		Email: "ada@x.com",
		Role:  entity.RoleUser,
	}
}

func TestJWTProvider_GenerateAndValidate(t *testing.T) {
	provider := newTestJWTProvider(15 * time.Minute)

	pair, err := provider.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("GenerateTokenPair() returned empty tokens")
	}

	claims, err := provider.ValidateToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.AccountID != "65a10f0e8bcf" {
		t.Errorf("claims.AccountID = %v", claims.AccountID)
	}
	if claims.Role != entity.RoleUser {
		t.Errorf("claims.Role = %v", claims.Role)
	}
	if claims.Refresh {
		t.Error("access token claims flagged as refresh")
	}

	refreshClaims, err := provider.ValidateToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ValidateToken(refresh) error = %v", err)
	}
	if !refreshClaims.Refresh {
		t.Error("refresh token claims not flagged as refresh")
	}
}

func TestJWTProvider_ValidateToken_Expired(t *testing.T) {
	provider := newTestJWTProvider(-time.Minute)

	pair, err := provider.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := provider.ValidateToken(pair.AccessToken); err != ErrExpiredToken {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTProvider_ValidateToken_WrongSecret(t *testing.T) {
	provider := newTestJWTProvider(15 * time.Minute)
	other := NewJWTProvider(&config.JWTConfig{
		Secret:               "a-different-secret-entirely",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
		Issuer:               "mealmart-test",
	})

	pair, err := provider.GenerateTokenPair(testAccount())
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if _, err := other.ValidateToken(pair.AccessToken); err != ErrInvalidToken {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTProvider_ValidateToken_Garbage(t *testing.T) {
	provider := newTestJWTProvider(15 * time.Minute)
	if _, err := provider.ValidateToken("not.a.token"); err != ErrInvalidToken {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}
