package di

import (
	"go.uber.org/fx"

	"github.com/mealmart/mealmart-go/internal/domain/service/impl"
)

// ServiceModule provides the lifecycle and transaction services
var ServiceModule = fx.Module("service",
	fx.Provide(
		impl.NewUserService,
		impl.NewAdminService,
		impl.NewMerchantService,
		impl.NewShopService,
		impl.NewItemService,
		impl.NewOrderService,
		impl.NewPaymentService,
		impl.NewReviewService,
		impl.NewSupportService,
	),
)
