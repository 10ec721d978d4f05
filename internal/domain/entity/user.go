package entity

// User is a customer account. The registration number is a third unique,
// case-normalized identifier alongside email and phone.
type User struct {
	Account                `json:",inline"`
	RegistrationNumber     string  `json:"registration_number"`
	IsRegistrationVerified bool    `json:"is_registration_verified"`
	Address                Address `json:"address"`
	Image                  string  `json:"image,omitempty"`
}

// Admin is an operator account for the platform itself
type Admin struct {
	Account `json:",inline"`
	Image   string `json:"image,omitempty"`
}

// Merchant is a shop operator account. It always belongs to a Shop.
type Merchant struct {
	Account    `json:",inline"`
	Image      string `json:"image,omitempty"`
	ShopID     string `json:"shop_id"`
	IsVerified bool   `json:"is_verified"`
}

// Shop is a storefront account. Operators are referenced by id, not owned;
// order and rating aggregates are denormalized onto the shop record.
type Shop struct {
	Account                `json:",inline"`
	Slug                   string   `json:"slug,omitempty"`
	Address                Address  `json:"address"`
	ImageCover             string   `json:"image_cover"`
	Images                 []string `json:"images,omitempty"`
	RatingsAverage         float64  `json:"ratings_average"`
	RatingsQuantity        int64    `json:"ratings_quantity"`
	TimeAverage            float64  `json:"time_average"`
	OrdersTotal            int64    `json:"orders_total"`
	OrdersTotalAmount      float64  `json:"orders_total_amount"`
	OfflinePaymentAccepted bool     `json:"offline_payment_accepted"`
	IsOpen                 bool     `json:"is_open"`
	OperatorIDs            []string `json:"operator_ids,omitempty"`
}
