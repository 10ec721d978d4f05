package di

import (
	"go.uber.org/fx"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	mongodao "github.com/mealmart/mealmart-go/internal/domain/dao/mongo"
)

// DAOModule provides the MongoDB data access objects
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideUserDAO,
		provideAdminDAO,
		provideMerchantDAO,
		provideShopDAO,
		provideItemDAO,
		provideOrderDAO,
		providePaymentDAO,
		provideReviewDAO,
		provideSupportDAO,
	),
)

func provideUserDAO(db *MongoDatabase) dao.UserDAO {
	return mongodao.NewUserDAO(db.DB)
}

func provideAdminDAO(db *MongoDatabase) dao.AdminDAO {
	return mongodao.NewAdminDAO(db.DB)
}

func provideMerchantDAO(db *MongoDatabase) dao.MerchantDAO {
	return mongodao.NewMerchantDAO(db.DB)
}

func provideShopDAO(db *MongoDatabase) dao.ShopDAO {
	return mongodao.NewShopDAO(db.DB)
}

func provideItemDAO(db *MongoDatabase) dao.ItemDAO {
	return mongodao.NewItemDAO(db.DB)
}

func provideOrderDAO(db *MongoDatabase) dao.OrderDAO {
	return mongodao.NewOrderDAO(db.DB)
}

func providePaymentDAO(db *MongoDatabase) dao.PaymentDAO {
	return mongodao.NewPaymentDAO(db.DB)
}

func provideReviewDAO(db *MongoDatabase) dao.ReviewDAO {
	return mongodao.NewReviewDAO(db.DB)
}

func provideSupportDAO(db *MongoDatabase) dao.SupportDAO {
	return mongodao.NewSupportDAO(db.DB)
}
