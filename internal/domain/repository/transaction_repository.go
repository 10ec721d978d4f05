package repository

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// ItemRepository defines the interface for menu item data operations
type ItemRepository interface {
	// Create creates a new item
	Create(ctx context.Context, item *entity.Item) error

	// Update updates an existing item
	Update(ctx context.Context, item *entity.Item) error

	// GetActiveByID retrieves an active item by ID
	GetActiveByID(ctx context.Context, id string) (*entity.Item, error)

	// ListActiveByShop retrieves a shop's active items with pagination
	ListActiveByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Item, int64, error)

	// Deactivate soft-deletes an item by ID
	Deactivate(ctx context.Context, id string) error
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create creates a new order
	Create(ctx context.Context, order *entity.Order) error

	// Update updates an existing order
	Update(ctx context.Context, order *entity.Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser retrieves a user's orders with pagination
	ListByUser(ctx context.Context, userID string, page, size int) ([]*entity.Order, int64, error)

	// ListByShop retrieves a shop's orders with pagination
	ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Order, int64, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	// Create creates a new payment
	Create(ctx context.Context, payment *entity.Payment) error

	// Update updates an existing payment
	Update(ctx context.Context, payment *entity.Payment) error

	// GetByID retrieves a payment by ID
	GetByID(ctx context.Context, id string) (*entity.Payment, error)

	// GetByOrder retrieves the payment attached to an order
	GetByOrder(ctx context.Context, orderID string) (*entity.Payment, error)
}

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	// Create creates a new review
	Create(ctx context.Context, review *entity.Review) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id string) (*entity.Review, error)

	// ListByShop retrieves a shop's reviews with pagination
	ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Review, int64, error)

	// ListByOrder retrieves the reviews written against an order
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error)
}

// SupportRepository defines the interface for support ticket data operations
type SupportRepository interface {
	// Create creates a new support ticket
	Create(ctx context.Context, ticket *entity.Support) error

	// Update updates an existing support ticket
	Update(ctx context.Context, ticket *entity.Support) error

	// GetByID retrieves a support ticket by ID
	GetByID(ctx context.Context, id string) (*entity.Support, error)

	// ListUnsolvedByShop retrieves a shop's open tickets with pagination
	ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Support, int64, error)
}
