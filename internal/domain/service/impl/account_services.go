package impl

import (
	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/internal/security"
	"github.com/mealmart/mealmart-go/internal/validation"
)

// userHooks extends the shared lifecycle with the registration number, the
// user's third unique identifier.
func userHooks() AccountHooks[*entity.User] {
	return AccountHooks[*entity.User]{
		Normalize: func(u *entity.User) {
			u.RegistrationNumber = validation.NormalizeIdentifier(u.RegistrationNumber)
		},
		MarkVerified: func(u *entity.User, channel entity.VerificationChannel) bool {
			if channel != entity.ChannelRegistration {
				return false
			}
			u.IsRegistrationVerified = true
			return true
		},
		CarryVerification: func(stored, updated *entity.User) {
			updated.IsRegistrationVerified = stored.IsRegistrationVerified &&
				updated.RegistrationNumber == stored.RegistrationNumber
		},
	}
}

func shopHooks() AccountHooks[*entity.Shop] {
	return AccountHooks[*entity.Shop]{
		Normalize: func(s *entity.Shop) {
			s.Slug = validation.NormalizeIdentifier(s.Slug)
		},
	}
}

// NewUserService creates the customer account lifecycle service.
func NewUserService(
	repo repository.UserRepository,
	hasher *security.PasswordHasher,
	passcodes *security.PasscodeIssuer,
	jwtProvider *security.JWTProvider,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.UserService {
	guard := NewUniquenessGuard(repo, service.UserUniqueFields(), metrics, logger)
	return NewAccountService(repo, guard, hasher, passcodes, jwtProvider, metrics, logger, entity.RoleUser, userHooks())
}

// NewAdminService creates the platform operator lifecycle service.
func NewAdminService(
	repo repository.AdminRepository,
	hasher *security.PasswordHasher,
	passcodes *security.PasscodeIssuer,
	jwtProvider *security.JWTProvider,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.AdminService {
	guard := NewUniquenessGuard(repo, service.AccountUniqueFields[*entity.Admin](), metrics, logger)
	return NewAccountService(repo, guard, hasher, passcodes, jwtProvider, metrics, logger, entity.RoleAdmin, AccountHooks[*entity.Admin]{})
}

// NewMerchantService creates the merchant lifecycle service.
func NewMerchantService(
	repo repository.MerchantRepository,
	hasher *security.PasswordHasher,
	passcodes *security.PasscodeIssuer,
	jwtProvider *security.JWTProvider,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.MerchantService {
	guard := NewUniquenessGuard(repo, service.AccountUniqueFields[*entity.Merchant](), metrics, logger)
	return NewAccountService(repo, guard, hasher, passcodes, jwtProvider, metrics, logger, entity.RoleMerchant, AccountHooks[*entity.Merchant]{})
}

// NewShopService creates the shop lifecycle service.
func NewShopService(
	repo repository.ShopRepository,
	hasher *security.PasswordHasher,
	passcodes *security.PasscodeIssuer,
	jwtProvider *security.JWTProvider,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.ShopService {
	guard := NewUniquenessGuard(repo, service.AccountUniqueFields[*entity.Shop](), metrics, logger)
	return NewAccountService(repo, guard, hasher, passcodes, jwtProvider, metrics, logger, entity.RoleShop, shopHooks())
}
