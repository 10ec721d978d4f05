package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/document"
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/mapper"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// NewUserDAO creates the users collection DAO
func NewUserDAO(db *mongo.Database) dao.UserDAO {
	return newAccountDAO[*entity.User, document.UserDocument](
		db,
		document.UserDocument{}.CollectionName(),
		mapper.UserToDocument,
		mapper.UserToEntity,
	)
}

// NewAdminDAO creates the admins collection DAO
func NewAdminDAO(db *mongo.Database) dao.AdminDAO {
	return newAccountDAO[*entity.Admin, document.AdminDocument](
		db,
		document.AdminDocument{}.CollectionName(),
		mapper.AdminToDocument,
		mapper.AdminToEntity,
	)
}

// NewMerchantDAO creates the merchants collection DAO
func NewMerchantDAO(db *mongo.Database) dao.MerchantDAO {
	return newAccountDAO[*entity.Merchant, document.MerchantDocument](
		db,
		document.MerchantDocument{}.CollectionName(),
		mapper.MerchantToDocument,
		mapper.MerchantToEntity,
	)
}

// NewShopDAO creates the shops collection DAO
func NewShopDAO(db *mongo.Database) dao.ShopDAO {
	return newAccountDAO[*entity.Shop, document.ShopDocument](
		db,
		document.ShopDocument{}.CollectionName(),
		mapper.ShopToDocument,
		mapper.ShopToEntity,
	)
}
