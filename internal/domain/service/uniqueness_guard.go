package service

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// UniqueField describes one identifier an account kind must hold exclusively:
// the stored field name, how to read the candidate value off an entity and
// how to read the matching verified flag off a conflicting holder.
type UniqueField[T entity.Credentialed] struct {
	Name     string
	Value    func(T) string
	Verified func(T) bool
}

// UniquenessGuard decides whether an account may claim its identifiers.
// A verified holder blocks the claim. An unverified holder loses the slot:
// its record is reclaimed and the claim proceeds.
type UniquenessGuard[T entity.Credentialed] interface {
	// EnsureAvailable checks every unique field of acct, skipping empty
	// values and the record identified by excludeID
	EnsureAvailable(ctx context.Context, acct T, excludeID string) error
}

// AccountUniqueFields returns the identifier set every account kind carries
func AccountUniqueFields[T entity.Credentialed]() []UniqueField[T] {
	return []UniqueField[T]{
		{
			Name:     dao.FieldEmail,
			Value:    func(a T) string { return a.GetAccount().Email },
			Verified: func(a T) bool { return a.GetAccount().IsEmailVerified },
		},
		{
			Name:     dao.FieldPhone,
			Value:    func(a T) string { return a.GetAccount().Phone },
			Verified: func(a T) bool { return a.GetAccount().IsPhoneVerified },
		},
	}
}

// UserUniqueFields extends the shared set with the user's registration number
func UserUniqueFields() []UniqueField[*entity.User] {
	return append(AccountUniqueFields[*entity.User](), UniqueField[*entity.User]{
		Name:     dao.FieldRegister,
		Value:    func(u *entity.User) string { return u.RegistrationNumber },
		Verified: func(u *entity.User) bool { return u.IsRegistrationVerified },
	})
}
