package di

import (
	"go.uber.org/fx"

	"github.com/mealmart/mealmart-go/internal/domain/repository/impl"
)

// RepositoryModule provides the repositories over the DAO layer
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		impl.NewUserRepository,
		impl.NewAdminRepository,
		impl.NewMerchantRepository,
		impl.NewShopRepository,
		impl.NewItemRepository,
		impl.NewOrderRepository,
		impl.NewPaymentRepository,
		impl.NewReviewRepository,
		impl.NewSupportRepository,
	),
)
