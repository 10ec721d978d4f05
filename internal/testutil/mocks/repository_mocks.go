// Package mocks provides in-memory repository implementations for service
// tests. The account mock honors the soft-delete flag the way the real
// storage does.
package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
)

// MockAccountRepository is an in-memory implementation of AccountRepository
type MockAccountRepository[T entity.Credentialed] struct {
	mu       sync.RWMutex
	accounts map[string]T
	order    []string
	nextID   int

	// FieldValue resolves a unique field name to its value on an account.
	// The default covers email and phone.
	FieldValue func(acct T, field string) string

	// Error injection
	CreateErr     error
	GetErr        error
	UpdateErr     error
	ListErr       error
	DeactivateErr error
	ReclaimErr    error
}

var _ repository.UserRepository = (*MockAccountRepository[*entity.User])(nil)

// NewMockAccountRepository creates an account mock for kinds whose unique
// identifiers are email and phone.
func NewMockAccountRepository[T entity.Credentialed]() *MockAccountRepository[T] {
	return &MockAccountRepository[T]{
		accounts: make(map[string]T),
		nextID:   1,
		FieldValue: func(acct T, field string) string {
			return accountFieldValue(acct.GetAccount(), field)
		},
	}
}

// NewMockUserRepository creates a user mock that also resolves the
// registration number field.
func NewMockUserRepository() *MockAccountRepository[*entity.User] {
	repo := NewMockAccountRepository[*entity.User]()
	repo.FieldValue = func(u *entity.User, field string) string {
		if field == dao.FieldRegister {
			return u.RegistrationNumber
		}
		return accountFieldValue(u.GetAccount(), field)
	}
	return repo
}

func accountFieldValue(a *entity.Account, field string) string {
	switch field {
	case dao.FieldEmail:
		return a.Email
	case dao.FieldPhone:
		return a.Phone
	}
	return ""
}

func (r *MockAccountRepository[T]) Create(ctx context.Context, acct T) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	acc := acct.GetAccount()
	if acc.ID == "" {
		acc.ID = fmt.Sprintf("acct-%d", r.nextID)
		r.nextID++
	}
	r.accounts[acc.ID] = acct
	r.order = append(r.order, acc.ID)
	return nil
}

func (r *MockAccountRepository[T]) GetActiveByID(ctx context.Context, id string) (T, error) {
	var zero T
	if r.GetErr != nil {
		return zero, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if acct, ok := r.accounts[id]; ok && acct.GetAccount().IsActive {
		return acct, nil
	}
	return zero, nil
}

func (r *MockAccountRepository[T]) GetActiveByField(ctx context.Context, field, value string) (T, error) {
	var zero T
	if r.GetErr != nil {
		return zero, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		acct, ok := r.accounts[id]
		if !ok || !acct.GetAccount().IsActive {
			continue
		}
		if r.FieldValue(acct, field) == value {
			return acct, nil
		}
	}
	return zero, nil
}

func (r *MockAccountRepository[T]) GetConflicting(ctx context.Context, field, value, excludeID string) (T, error) {
	var zero T
	if r.GetErr != nil {
		return zero, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		acct, ok := r.accounts[id]
		if !ok || !acct.GetAccount().IsActive {
			continue
		}
		if excludeID != "" && id == excludeID {
			continue
		}
		if r.FieldValue(acct, field) == value {
			return acct, nil
		}
	}
	return zero, nil
}

func (r *MockAccountRepository[T]) Update(ctx context.Context, acct T) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[acct.GetAccount().ID] = acct
	return nil
}

func (r *MockAccountRepository[T]) ListActive(ctx context.Context, filter dao.Filter, page, size int) ([]T, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []T
	for _, id := range r.order {
		acct, ok := r.accounts[id]
		if !ok || !acct.GetAccount().IsActive {
			continue
		}
		match := true
		for field, want := range filter {
			if value, ok := want.(string); ok && r.FieldValue(acct, field) != value {
				match = false
				break
			}
		}
		if match {
			active = append(active, acct)
		}
	}

	total := int64(len(active))
	start := (page - 1) * size
	if start >= len(active) {
		return nil, total, nil
	}
	end := start + size
	if end > len(active) {
		end = len(active)
	}
	return active[start:end], total, nil
}

func (r *MockAccountRepository[T]) CountActive(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, acct := range r.accounts {
		if acct.GetAccount().IsActive {
			count++
		}
	}
	return count, nil
}

func (r *MockAccountRepository[T]) Deactivate(ctx context.Context, id string) error {
	if r.DeactivateErr != nil {
		return r.DeactivateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if acct, ok := r.accounts[id]; ok {
		acct.GetAccount().IsActive = false
	}
	return nil
}

func (r *MockAccountRepository[T]) Reclaim(ctx context.Context, id string) error {
	if r.ReclaimErr != nil {
		return r.ReclaimErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
	return nil
}

func (r *MockAccountRepository[T]) GetAnyByID(ctx context.Context, id string) (T, error) {
	var zero T
	if r.GetErr != nil {
		return zero, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if acct, ok := r.accounts[id]; ok {
		return acct, nil
	}
	return zero, nil
}

// Stored returns the raw record regardless of flags, for test assertions.
func (r *MockAccountRepository[T]) Stored(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.accounts[id]
	return acct, ok
}
