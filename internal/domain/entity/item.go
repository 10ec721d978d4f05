package entity

import "time"

// Item is a menu item offered by a shop. Items are soft-deletable the same
// way accounts are: withdrawn items stay on historical orders by reference.
type Item struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	ShopID          string    `json:"shop_id"`
	Image           string    `json:"image"`
	Images          []string  `json:"images,omitempty"`
	Price           float64   `json:"price"`
	TimeTaken       float64   `json:"time_taken,omitempty"`
	RatingsAverage  float64   `json:"ratings_average"`
	RatingsQuantity int64     `json:"ratings_quantity"`
	IsVeg           bool      `json:"is_veg"`
	IsAvailable     bool      `json:"is_available"`
	IsActive        bool      `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Review rates a delivered order. Items lists the rated item ids.
type Review struct {
	ID        string    `json:"id"`
	Review    string    `json:"review"`
	Rating    float64   `json:"rating"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	ShopID    string    `json:"shop_id"`
	ItemIDs   []string  `json:"item_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupportType classifies what a support ticket is about
type SupportType string

const (
	SupportOrder    SupportType = "ORDER"
	SupportPayment  SupportType = "PAYMENT"
	SupportPlatform SupportType = "PLATFORM"
)

// Support is a customer support ticket tied to an order
type Support struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"order_id"`
	UserID     string      `json:"user_id"`
	ShopID     string      `json:"shop_id"`
	Query      string      `json:"query"`
	Type       SupportType `json:"type"`
	IsSolved   bool        `json:"is_solved"`
	TimeAsked  time.Time   `json:"time_asked"`
	TimeSolved *time.Time  `json:"time_solved,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
