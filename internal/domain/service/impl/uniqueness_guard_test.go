package impl

import (
	"context"
	"testing"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/internal/testutil"
	"github.com/mealmart/mealmart-go/internal/testutil/mocks"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

func setupGuard(t *testing.T) (service.UniquenessGuard[*entity.User], *mocks.MockAccountRepository[*entity.User]) {
	repo := mocks.NewMockUserRepository()
	guard := NewUniquenessGuard(repo, service.UserUniqueFields(), observability.NewMetrics(), testutil.Logger(t))
	return guard, repo
}

func storeUser(t *testing.T, repo *mocks.MockAccountRepository[*entity.User], email, phone string, emailVerified bool) *entity.User {
	t.Helper()
	user := &entity.User{Account: entity.Account{
		Name:            "Holder",
		Email:           email,
		Phone:           phone,
		IsActive:        true,
		IsEmailVerified: emailVerified,
	}}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return user
}

func TestUniquenessGuard_FreeIdentifiers(t *testing.T) {
	guard, _ := setupGuard(t)

	claimant := &entity.User{Account: entity.Account{
		Email: testutil.UniqueEmail("free"),
		Phone: "5551110000",
	}}
	if err := guard.EnsureAvailable(context.Background(), claimant, ""); err != nil {
		t.Errorf("EnsureAvailable() error = %v, want nil", err)
	}
}

func TestUniquenessGuard_VerifiedHolderBlocks(t *testing.T) {
	guard, repo := setupGuard(t)
	email := testutil.UniqueEmail("held")
	holder := storeUser(t, repo, email, "5551110001", true)

	claimant := &entity.User{Account: entity.Account{Email: email, Phone: "5551110002"}}
	if err := guard.EnsureAvailable(context.Background(), claimant, ""); !errors.IsConflict(err) {
		t.Errorf("EnsureAvailable() error = %v, want conflict", err)
	}
	if _, ok := repo.Stored(holder.ID); !ok {
		t.Error("verified holder was removed")
	}
}

func TestUniquenessGuard_UnverifiedHolderReclaimed(t *testing.T) {
	guard, repo := setupGuard(t)
	email := testutil.UniqueEmail("squat")
	holder := storeUser(t, repo, email, "5551110003", false)

	claimant := &entity.User{Account: entity.Account{Email: email, Phone: "5551110004"}}
	if err := guard.EnsureAvailable(context.Background(), claimant, ""); err != nil {
		t.Fatalf("EnsureAvailable() error = %v, want nil", err)
	}
	if _, ok := repo.Stored(holder.ID); ok {
		t.Error("unverified holder still stored, want reclaimed")
	}
}

func TestUniquenessGuard_ReclaimTouchesOnlyConflictingRecord(t *testing.T) {
	guard, repo := setupGuard(t)
	email := testutil.UniqueEmail("narrow")
	holder := storeUser(t, repo, email, "5551110005", false)
	bystander := storeUser(t, repo, testutil.UniqueEmail("bystander"), "5551110006", false)

	claimant := &entity.User{Account: entity.Account{Email: email, Phone: "5551110007"}}
	if err := guard.EnsureAvailable(context.Background(), claimant, ""); err != nil {
		t.Fatalf("EnsureAvailable() error = %v", err)
	}
	if _, ok := repo.Stored(holder.ID); ok {
		t.Error("conflicting holder not reclaimed")
	}
	if _, ok := repo.Stored(bystander.ID); !ok {
		t.Error("unrelated record was reclaimed")
	}
}

func TestUniquenessGuard_ExcludesSelf(t *testing.T) {
	guard, repo := setupGuard(t)
	email := testutil.UniqueEmail("self")
	holder := storeUser(t, repo, email, "5551110008", true)

	// A record re-asserting its own identifiers conflicts with nobody.
	if err := guard.EnsureAvailable(context.Background(), holder, holder.ID); err != nil {
		t.Errorf("EnsureAvailable() error = %v, want nil", err)
	}
}

func TestUniquenessGuard_SkipsEmptyValues(t *testing.T) {
	guard, repo := setupGuard(t)
	storeUser(t, repo, testutil.UniqueEmail("blank"), "5551110009", true)

	// No identifiers at all: nothing to check, nothing to conflict with.
	claimant := &entity.User{}
	if err := guard.EnsureAvailable(context.Background(), claimant, ""); err != nil {
		t.Errorf("EnsureAvailable() error = %v, want nil", err)
	}
}

func TestUniquenessGuard_RegistrationNumberField(t *testing.T) {
	guard, repo := setupGuard(t)

	holder := &entity.User{
		Account: entity.Account{
			Email:    testutil.UniqueEmail("reg-holder"),
			Phone:    "5551110010",
			IsActive: true,
		},
		RegistrationNumber:     "reg-42",
		IsRegistrationVerified: true,
	}
	if err := repo.Create(context.Background(), holder); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	claimant := &entity.User{
		Account: entity.Account{
			Email: testutil.UniqueEmail("reg-claim"),
			Phone: "5551110011",
		},
		RegistrationNumber: "reg-42",
	}
	if err := guard.EnsureAvailable(context.Background(), claimant, ""); !errors.IsConflict(err) {
		t.Errorf("EnsureAvailable() error = %v, want conflict on registration number", err)
	}
}
