package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemDocument represents a menu item in MongoDB
type ItemDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	ShopID          primitive.ObjectID `bson:"shop"`
	Image           string             `bson:"image"`
	Images          []string           `bson:"images,omitempty"`
	Price           float64            `bson:"price"`
	TimeTaken       float64            `bson:"time_taken,omitempty"`
	RatingsAverage  float64            `bson:"ratings_average"`
	RatingsQuantity int64              `bson:"ratings_quantity"`
	IsVeg           bool               `bson:"is_veg"`
	IsAvailable     bool               `bson:"is_available"`
	IsActive        bool               `bson:"is_active"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for items
func (ItemDocument) CollectionName() string {
	return "items"
}

// OrderDocument represents an order in MongoDB
type OrderDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	ShopID        primitive.ObjectID   `bson:"shop"`
	UserID        primitive.ObjectID   `bson:"user"`
	PaymentID     primitive.ObjectID   `bson:"payment,omitempty"`
	ItemIDs       []primitive.ObjectID `bson:"items"`
	Status        string               `bson:"status"`
	TotalPrice    float64              `bson:"total_price"`
	TimeReceived  *time.Time           `bson:"time_received,omitempty"`
	TimePrepared  *time.Time           `bson:"time_prepared,omitempty"`
	TimeDelivered *time.Time           `bson:"time_delivered,omitempty"`
	TimeCanceled  *time.Time           `bson:"time_canceled,omitempty"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for orders
func (OrderDocument) CollectionName() string {
	return "orders"
}

// PaymentDocument represents a payment in MongoDB
type PaymentDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ShopID          primitive.ObjectID `bson:"shop"`
	UserFromID      primitive.ObjectID `bson:"user_from"`
	UserToID        primitive.ObjectID `bson:"user_to"`
	OrderID         primitive.ObjectID `bson:"order"`
	TransactionID   string             `bson:"transaction_id"`
	Type            string             `bson:"payment_type,omitempty"`
	Status          string             `bson:"payment_status"`
	Amount          float64            `bson:"amount"`
	TimeInitialized *time.Time         `bson:"time_initialized,omitempty"`
	TimeCompleted   *time.Time         `bson:"time_completed,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for payments
func (PaymentDocument) CollectionName() string {
	return "payments"
}

// ReviewDocument represents a review in MongoDB
type ReviewDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Review    string               `bson:"review"`
	Rating    float64              `bson:"rating"`
	OrderID   primitive.ObjectID   `bson:"order"`
	UserID    primitive.ObjectID   `bson:"user"`
	ShopID    primitive.ObjectID   `bson:"shop"`
	ItemIDs   []primitive.ObjectID `bson:"items,omitempty"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for reviews
func (ReviewDocument) CollectionName() string {
	return "reviews"
}

// SupportDocument represents a support ticket in MongoDB
type SupportDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	OrderID    primitive.ObjectID `bson:"order"`
	UserID     primitive.ObjectID `bson:"user"`
	ShopID     primitive.ObjectID `bson:"shop"`
	Query      string             `bson:"query"`
	Type       string             `bson:"type"`
	IsSolved   bool               `bson:"is_solved"`
	TimeAsked  time.Time          `bson:"time_asked"`
	TimeSolved *time.Time         `bson:"time_solved,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for support tickets
func (SupportDocument) CollectionName() string {
	return "supports"
}
