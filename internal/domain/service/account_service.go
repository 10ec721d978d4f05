// Package service defines the business operation contracts over the
// repository layer: the shared account lifecycle, the identifier uniqueness
// guard and the transaction entity services.
package service

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

var (
	ErrAccountNotFound = errors.ErrNotFound.WithMessage("account not found")

	// ErrInvalidCredentials is the single failure every bad login gets,
	// whatever actually went wrong.
	ErrInvalidCredentials = errors.ErrAuth

	ErrIdentifierTaken    = errors.ErrConflict.WithMessage("identifier already taken")
	ErrInvalidPasscode    = errors.ErrAuth.WithMessage("passcode verification failed")
	ErrChannelUnsupported = errors.ErrValidation.WithMessage("verification channel not supported")
)

// AccountLifecycle is the credential lifecycle contract shared by the four
// account kinds. Instantiations are exposed under the per-kind aliases below.
type AccountLifecycle[T entity.Credentialed] interface {
	// Register validates the account, claims its unique identifiers, hashes
	// the password and persists the record active.
	Register(ctx context.Context, acct T, password string) (T, error)

	// Authenticate verifies the email/password pair against an active account
	// and issues a token pair
	Authenticate(ctx context.Context, email, password string) (*response.AuthResponse, error)

	// IssueVerificationCode rotates the account's passcode secret and returns
	// the code for out-of-band delivery
	IssueVerificationCode(ctx context.Context, id string, channel entity.VerificationChannel) (string, error)

	// VerifyCode checks a submitted passcode. Success marks the channel's
	// identifier verified and retires the secret; failure leaves the secret
	// in place so the holder can retry within the window.
	VerifyCode(ctx context.Context, id string, channel entity.VerificationChannel, code string) error

	// GetActiveByID retrieves an active account
	GetActiveByID(ctx context.Context, id string) (T, error)

	// GetAnyByID retrieves an account regardless of its active flag
	GetAnyByID(ctx context.Context, id string) (T, error)

	// ListActive retrieves active accounts with pagination
	ListActive(ctx context.Context, filter dao.Filter, page, size int) (*response.PagedResponse[T], error)

	// UpdateProfile updates mutable fields. The credential hash is preserved
	// from the stored record; changed identifiers are re-checked for
	// uniqueness and drop back to unverified.
	UpdateProfile(ctx context.Context, acct T) (T, error)

	// ChangePassword rotates the credential after verifying the old one
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error

	// Deactivate soft-deletes the account. The record and its identifiers
	// stay stored.
	Deactivate(ctx context.Context, id string) error
}

// UserService manages customer accounts
type UserService = AccountLifecycle[*entity.User]

// AdminService manages platform operator accounts
type AdminService = AccountLifecycle[*entity.Admin]

// MerchantService manages merchant accounts
type MerchantService = AccountLifecycle[*entity.Merchant]

// ShopService manages shop accounts
type ShopService = AccountLifecycle[*entity.Shop]
