package impl

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/internal/security"
	"github.com/mealmart/mealmart-go/internal/validation"
)

// AccountHooks carries the per-kind extension points of the shared lifecycle.
// Every hook is optional; the zero value covers kinds whose identifiers are
// exactly email and phone.
type AccountHooks[T entity.Credentialed] struct {
	// Normalize canonicalizes kind-specific identifier fields before
	// validation and uniqueness checks
	Normalize func(acct T)

	// MarkVerified flips a kind-specific verified flag for a channel the
	// shared record does not know. It reports whether the channel applies.
	MarkVerified func(acct T, channel entity.VerificationChannel) bool

	// CarryVerification ports kind-specific verified flags from the stored
	// record onto an updated one, dropping flags whose identifier changed
	CarryVerification func(stored, updated T)
}

// accountService implements service.AccountLifecycle for one account kind.
type accountService[T entity.Credentialed] struct {
	repo      repository.AccountRepository[T]
	guard     service.UniquenessGuard[T]
	hasher    *security.PasswordHasher
	passcodes *security.PasscodeIssuer
	jwt       *security.JWTProvider
	metrics   *observability.Metrics
	logger    *zap.Logger
	role      entity.Role
	hooks     AccountHooks[T]
}

// NewAccountService creates the lifecycle service for one account kind.
func NewAccountService[T entity.Credentialed](
	repo repository.AccountRepository[T],
	guard service.UniquenessGuard[T],
	hasher *security.PasswordHasher,
	passcodes *security.PasscodeIssuer,
	jwtProvider *security.JWTProvider,
	metrics *observability.Metrics,
	logger *zap.Logger,
	role entity.Role,
	hooks AccountHooks[T],
) service.AccountLifecycle[T] {
	return &accountService[T]{
		repo:      repo,
		guard:     guard,
		hasher:    hasher,
		passcodes: passcodes,
		jwt:       jwtProvider,
		metrics:   metrics,
		logger:    logger,
		role:      role,
		hooks:     hooks,
	}
}

func (s *accountService[T]) Register(ctx context.Context, acct T, password string) (T, error) {
	var zero T
	acc := acct.GetAccount()

	if err := validation.Required("name", acc.Name); err != nil {
		return zero, err
	}
	acc.Email = validation.NormalizeEmail(acc.Email)
	if err := validation.Email(acc.Email); err != nil {
		return zero, err
	}
	if err := validation.Phone(acc.Phone); err != nil {
		return zero, err
	}
	acc.Phone = strings.TrimSpace(acc.Phone)
	if s.hooks.Normalize != nil {
		s.hooks.Normalize(acct)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return zero, err
	}

	acc.PasswordHash = hash
	acc.Role = s.role
	acc.IsActive = true
	acc.IsEmailVerified = false
	acc.IsPhoneVerified = false
	acc.PasscodeSecret = ""

	if err := s.guard.EnsureAvailable(ctx, acct, ""); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return zero, err
	}

	s.metrics.Registrations.WithLabelValues(string(s.role)).Inc()
	s.logger.Info("account registered",
		zap.String("role", string(s.role)),
		zap.String("id", acc.ID))
	return acct, nil
}

func (s *accountService[T]) Authenticate(ctx context.Context, email, password string) (*response.AuthResponse, error) {
	var zero T
	email = validation.NormalizeEmail(email)

	acct, err := s.repo.GetActiveByField(ctx, dao.FieldEmail, email)
	if err != nil {
		return nil, err
	}
	if acct == zero {
		s.metrics.AuthFailures.WithLabelValues(string(s.role)).Inc()
		return nil, service.ErrInvalidCredentials
	}

	acc := acct.GetAccount()
	if !s.hasher.Verify(password, acc.PasswordHash) {
		s.metrics.AuthFailures.WithLabelValues(string(s.role)).Inc()
		return nil, service.ErrInvalidCredentials
	}

	pair, err := s.jwt.GenerateTokenPair(acc)
	if err != nil {
		return nil, err
	}
	return &response.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    pair.ExpiresAt,
		Account:      response.NewAccountResponse(acc),
	}, nil
}

func (s *accountService[T]) IssueVerificationCode(ctx context.Context, id string, channel entity.VerificationChannel) (string, error) {
	var zero T
	acct, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return "", err
	}
	if acct == zero {
		return "", service.ErrAccountNotFound
	}

	acc := acct.GetAccount()
	secret, code, err := s.passcodes.Issue(acc.Email)
	if err != nil {
		return "", err
	}

	// Storing the fresh secret invalidates any code issued before this one.
	acc.PasscodeSecret = secret
	if err := s.repo.Update(ctx, acct); err != nil {
		return "", err
	}

	s.metrics.PasscodesIssued.WithLabelValues(string(channel)).Inc()
	return code, nil
}

func (s *accountService[T]) VerifyCode(ctx context.Context, id string, channel entity.VerificationChannel, code string) error {
	var zero T
	acct, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if acct == zero {
		return service.ErrAccountNotFound
	}

	acc := acct.GetAccount()
	if !s.passcodes.Verify(acc.PasscodeSecret, code) {
		// The secret stays put. The holder keeps retrying within the window.
		return service.ErrInvalidPasscode
	}

	switch channel {
	case entity.ChannelEmail:
		acc.IsEmailVerified = true
	case entity.ChannelPhone:
		acc.IsPhoneVerified = true
	default:
		if s.hooks.MarkVerified == nil || !s.hooks.MarkVerified(acct, channel) {
			return service.ErrChannelUnsupported
		}
	}

	acc.PasscodeSecret = ""
	if err := s.repo.Update(ctx, acct); err != nil {
		return err
	}

	s.metrics.PasscodesVerified.WithLabelValues(string(channel)).Inc()
	return nil
}

func (s *accountService[T]) GetActiveByID(ctx context.Context, id string) (T, error) {
	var zero T
	acct, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if acct == zero {
		return zero, service.ErrAccountNotFound
	}
	return acct, nil
}

func (s *accountService[T]) GetAnyByID(ctx context.Context, id string) (T, error) {
	var zero T
	acct, err := s.repo.GetAnyByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if acct == zero {
		return zero, service.ErrAccountNotFound
	}
	return acct, nil
}

func (s *accountService[T]) ListActive(ctx context.Context, filter dao.Filter, page, size int) (*response.PagedResponse[T], error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	accts, total, err := s.repo.ListActive(ctx, filter, page, size)
	if err != nil {
		return nil, err
	}
	result := response.NewPagedResponse(accts, page, size, total)
	return &result, nil
}

func (s *accountService[T]) UpdateProfile(ctx context.Context, acct T) (T, error) {
	var zero T
	acc := acct.GetAccount()

	stored, err := s.repo.GetActiveByID(ctx, acc.ID)
	if err != nil {
		return zero, err
	}
	if stored == zero {
		return zero, service.ErrAccountNotFound
	}
	old := stored.GetAccount()

	if err := validation.Required("name", acc.Name); err != nil {
		return zero, err
	}
	acc.Email = validation.NormalizeEmail(acc.Email)
	if err := validation.Email(acc.Email); err != nil {
		return zero, err
	}
	if err := validation.Phone(acc.Phone); err != nil {
		return zero, err
	}
	acc.Phone = strings.TrimSpace(acc.Phone)
	if s.hooks.Normalize != nil {
		s.hooks.Normalize(acct)
	}

	// Credential and state fields always come from the stored record.
	acc.PasswordHash = old.PasswordHash
	acc.PasscodeSecret = old.PasscodeSecret
	acc.Role = old.Role
	acc.IsActive = old.IsActive
	acc.CreatedAt = old.CreatedAt

	// A changed identifier starts over unverified.
	acc.IsEmailVerified = old.IsEmailVerified && acc.Email == old.Email
	acc.IsPhoneVerified = old.IsPhoneVerified && acc.Phone == old.Phone
	if s.hooks.CarryVerification != nil {
		s.hooks.CarryVerification(stored, acct)
	}

	if err := s.guard.EnsureAvailable(ctx, acct, acc.ID); err != nil {
		return zero, err
	}
	if err := s.repo.Update(ctx, acct); err != nil {
		return zero, err
	}
	return acct, nil
}

func (s *accountService[T]) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	var zero T
	acct, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if acct == zero {
		return service.ErrAccountNotFound
	}

	acc := acct.GetAccount()
	if !s.hasher.Verify(oldPassword, acc.PasswordHash) {
		s.metrics.AuthFailures.WithLabelValues(string(s.role)).Inc()
		return service.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	acc.PasswordHash = hash
	return s.repo.Update(ctx, acct)
}

func (s *accountService[T]) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
