package repository

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// AccountRepository defines the data operations shared by every account kind.
// The active-only reads honor the soft-delete flag; GetAnyByID is the
// administrative bypass.
type AccountRepository[T entity.Credentialed] interface {
	// Create creates a new account
	Create(ctx context.Context, acct T) error

	// GetActiveByID retrieves an active account by ID
	GetActiveByID(ctx context.Context, id string) (T, error)

	// GetActiveByField retrieves an active account by an exact field match
	GetActiveByField(ctx context.Context, field, value string) (T, error)

	// GetConflicting retrieves an active account holding the value in the
	// given unique field, excluding excludeID when non-empty
	GetConflicting(ctx context.Context, field, value, excludeID string) (T, error)

	// Update updates an existing account
	Update(ctx context.Context, acct T) error

	// ListActive retrieves active accounts with pagination
	ListActive(ctx context.Context, filter dao.Filter, page, size int) ([]T, int64, error)

	// CountActive returns the number of active accounts
	CountActive(ctx context.Context) (int64, error)

	// Deactivate soft-deletes an account by ID
	Deactivate(ctx context.Context, id string) error

	// Reclaim physically removes an account record, freeing its identifiers
	Reclaim(ctx context.Context, id string) error

	// GetAnyByID retrieves an account regardless of its active flag
	GetAnyByID(ctx context.Context, id string) (T, error)
}

// UserRepository handles customer accounts
type UserRepository = AccountRepository[*entity.User]

// AdminRepository handles platform operator accounts
type AdminRepository = AccountRepository[*entity.Admin]

// MerchantRepository handles merchant accounts
type MerchantRepository = AccountRepository[*entity.Merchant]

// ShopRepository handles shop accounts
type ShopRepository = AccountRepository[*entity.Shop]
