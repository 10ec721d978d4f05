package response

import (
	"time"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// AccountResponse is the external representation of a credentialed account.
// The credential hash, the passcode secret and the soft-delete flag never
// leave the process.
type AccountResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	IsPhoneVerified bool      `json:"is_phone_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewAccountResponse builds the external view of an account record
func NewAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Role:            string(a.Role),
		IsEmailVerified: a.IsEmailVerified,
		IsPhoneVerified: a.IsPhoneVerified,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// AuthResponse carries the tokens issued on successful authentication
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresAt    time.Time       `json:"expires_at"`
	Account      AccountResponse `json:"account"`
}
