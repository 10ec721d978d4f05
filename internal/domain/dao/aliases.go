package dao

import "github.com/mealmart/mealmart-go/internal/domain/entity"

// Per-entity aliases keep constructor and DI signatures readable
type (
	UserDAO     = AccountDAO[*entity.User]
	AdminDAO    = AccountDAO[*entity.Admin]
	MerchantDAO = AccountDAO[*entity.Merchant]
	ShopDAO     = AccountDAO[*entity.Shop]
)
