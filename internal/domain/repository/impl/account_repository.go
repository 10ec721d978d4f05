// Package impl provides repository implementations that delegate to the DAO
// layer. Repositories present store-neutral contracts to services while DAOs
// handle database-specific operations.
package impl

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
)

// accountRepository implements repository.AccountRepository by delegating to
// the matching AccountDAO.
type accountRepository[T entity.Credentialed] struct {
	dao dao.AccountDAO[T]
}

// NewAccountRepository creates an AccountRepository over the given DAO.
func NewAccountRepository[T entity.Credentialed](d dao.AccountDAO[T]) repository.AccountRepository[T] {
	return &accountRepository[T]{dao: d}
}

// NewUserRepository creates the customer account repository.
func NewUserRepository(d dao.UserDAO) repository.UserRepository {
	return NewAccountRepository(d)
}

// NewAdminRepository creates the platform operator account repository.
func NewAdminRepository(d dao.AdminDAO) repository.AdminRepository {
	return NewAccountRepository(d)
}

// NewMerchantRepository creates the merchant account repository.
func NewMerchantRepository(d dao.MerchantDAO) repository.MerchantRepository {
	return NewAccountRepository(d)
}

// NewShopRepository creates the shop account repository.
func NewShopRepository(d dao.ShopDAO) repository.ShopRepository {
	return NewAccountRepository(d)
}

// Create inserts a new account.
func (r *accountRepository[T]) Create(ctx context.Context, acct T) error {
	return r.dao.Create(ctx, acct)
}

// GetActiveByID retrieves an active account by its ID.
func (r *accountRepository[T]) GetActiveByID(ctx context.Context, id string) (T, error) {
	return r.dao.FindActiveByID(ctx, id)
}

// GetActiveByField retrieves an active account by an exact field match.
func (r *accountRepository[T]) GetActiveByField(ctx context.Context, field, value string) (T, error) {
	return r.dao.FindActiveByField(ctx, field, value)
}

// GetConflicting retrieves an active account occupying a unique field value.
func (r *accountRepository[T]) GetConflicting(ctx context.Context, field, value, excludeID string) (T, error) {
	return r.dao.FindConflicting(ctx, field, value, excludeID)
}

// Update modifies an existing account.
func (r *accountRepository[T]) Update(ctx context.Context, acct T) error {
	return r.dao.Update(ctx, acct)
}

// ListActive retrieves active accounts with pagination.
func (r *accountRepository[T]) ListActive(ctx context.Context, filter dao.Filter, page, size int) ([]T, int64, error) {
	return r.dao.ListActive(ctx, filter, page, size)
}

// CountActive returns the number of active accounts.
func (r *accountRepository[T]) CountActive(ctx context.Context) (int64, error) {
	return r.dao.CountActive(ctx)
}

// Deactivate soft-deletes an account by ID.
func (r *accountRepository[T]) Deactivate(ctx context.Context, id string) error {
	return r.dao.Deactivate(ctx, id)
}

// Reclaim physically removes an account record.
func (r *accountRepository[T]) Reclaim(ctx context.Context, id string) error {
	return r.dao.HardDelete(ctx, id)
}

// GetAnyByID retrieves an account regardless of its active flag.
func (r *accountRepository[T]) GetAnyByID(ctx context.Context, id string) (T, error) {
	return r.dao.FindAnyByID(ctx, id)
}
