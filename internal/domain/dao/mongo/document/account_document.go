// Package document defines MongoDB document structs for persistence. They
// are separate from the domain entities so storage field names and types can
// evolve without touching domain code.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountDocument is the shared storage shape of every account collection.
// Concrete documents embed it inline.
type AccountDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	Password        string             `bson:"password"`
	Role            string             `bson:"role"`
	IsEmailVerified bool               `bson:"is_email_verified"`
	IsPhoneVerified bool               `bson:"is_phone_verified"`
	IsActive        bool               `bson:"is_active"`
	PasscodeSecret  string             `bson:"passcode_secret,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

// AddressDocument is the embedded postal address shape
type AddressDocument struct {
	Street      string `bson:"street,omitempty"`
	HouseNumber string `bson:"house_number,omitempty"`
	Landmark    string `bson:"landmark,omitempty"`
}

// UserDocument represents a customer account in MongoDB
type UserDocument struct {
	AccountDocument        `bson:",inline"`
	RegistrationNumber     string          `bson:"register"`
	IsRegistrationVerified bool            `bson:"is_register_verified"`
	Address                AddressDocument `bson:"address,omitempty"`
	Image                  string          `bson:"image,omitempty"`
}

// CollectionName returns the MongoDB collection name for users
func (UserDocument) CollectionName() string {
	return "users"
}

// AdminDocument represents a platform operator account in MongoDB
type AdminDocument struct {
	AccountDocument `bson:",inline"`
	Image           string `bson:"image,omitempty"`
}

// CollectionName returns the MongoDB collection name for admins
func (AdminDocument) CollectionName() string {
	return "admins"
}

// MerchantDocument represents a shop operator account in MongoDB
type MerchantDocument struct {
	AccountDocument `bson:",inline"`
	Image           string             `bson:"image,omitempty"`
	ShopID          primitive.ObjectID `bson:"shop,omitempty"`
	IsVerified      bool               `bson:"is_verified"`
}

// CollectionName returns the MongoDB collection name for merchants
func (MerchantDocument) CollectionName() string {
	return "merchants"
}

// ShopDocument represents a storefront account in MongoDB
type ShopDocument struct {
	AccountDocument        `bson:",inline"`
	Slug                   string               `bson:"slug,omitempty"`
	Address                AddressDocument      `bson:"address,omitempty"`
	ImageCover             string               `bson:"image_cover"`
	Images                 []string             `bson:"images,omitempty"`
	RatingsAverage         float64              `bson:"ratings_average"`
	RatingsQuantity        int64                `bson:"ratings_quantity"`
	TimeAverage            float64              `bson:"time_average"`
	OrdersTotal            int64                `bson:"orders_total"`
	OrdersTotalAmount      float64              `bson:"orders_total_amount"`
	OfflinePaymentAccepted bool                 `bson:"offline_payment_accepted"`
	IsOpen                 bool                 `bson:"is_open"`
	OperatorIDs            []primitive.ObjectID `bson:"operators,omitempty"`
}

// CollectionName returns the MongoDB collection name for shops
func (ShopDocument) CollectionName() string {
	return "shops"
}
