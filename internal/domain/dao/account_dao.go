// Package dao defines the data access contracts for the marketplace
// entities. Implementations live in subpackages per backing store.
package dao

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// Unique identifier fields shared by the account collections. Values are
// stored case-normalized, so lookups on them are effectively
// case-insensitive.
const (
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldRegister = "register"
)

// Filter is an exact-match query over stored field names
type Filter map[string]any

// AccountDAO is the data access contract shared by every account collection
// (users, admins, merchants, shops). Every read-style method except
// FindAnyByID conjoins the active-only predicate explicitly: a deactivated
// record is invisible through the normal query surface.
//
// Find methods return the zero value and a nil error when nothing matches.
type AccountDAO[T entity.Credentialed] interface {
	// Create inserts a new account. A storage-level unique index violation
	// surfaces as a conflict error.
	Create(ctx context.Context, acct T) error

	// Update replaces the stored account by id
	Update(ctx context.Context, acct T) error

	// FindActiveByID retrieves an active account by id
	FindActiveByID(ctx context.Context, id string) (T, error)

	// FindActiveByField retrieves an active account by an exact field match
	FindActiveByField(ctx context.Context, field, value string) (T, error)

	// FindConflicting retrieves an active account holding the given value in
	// the given unique field, excluding excludeID when non-empty. This is the
	// uniqueness pre-check probe.
	FindConflicting(ctx context.Context, field, value, excludeID string) (T, error)

	// ListActive retrieves active accounts matching the filter, paginated
	ListActive(ctx context.Context, filter Filter, page, size int) ([]T, int64, error)

	// CountActive returns the number of active accounts
	CountActive(ctx context.Context) (int64, error)

	// Deactivate flips the soft-delete flag; the record is never removed
	Deactivate(ctx context.Context, id string) error

	// HardDelete physically removes a record. Reserved for reclaiming an
	// unverified identifier slot; never part of the public delete surface.
	HardDelete(ctx context.Context, id string) error

	// FindAnyByID retrieves an account regardless of its active flag. This
	// is the explicit administrative bypass of the soft-delete filter.
	FindAnyByID(ctx context.Context, id string) (T, error)
}
