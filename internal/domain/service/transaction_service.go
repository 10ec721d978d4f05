package service

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

var (
	ErrItemNotFound    = errors.ErrNotFound.WithMessage("item not found")
	ErrOrderNotFound   = errors.ErrNotFound.WithMessage("order not found")
	ErrPaymentNotFound = errors.ErrNotFound.WithMessage("payment not found")
	ErrReviewNotFound  = errors.ErrNotFound.WithMessage("review not found")
	ErrSupportNotFound = errors.ErrNotFound.WithMessage("support ticket not found")

	ErrOrderAlreadyPaid    = errors.ErrConflict.WithMessage("order already has a payment")
	ErrOrderNotDelivered   = errors.ErrValidation.WithMessage("order has not been delivered")
	ErrTicketAlreadySolved = errors.ErrConflict.WithMessage("support ticket already solved")
)

// ItemService manages a shop's menu items
type ItemService interface {
	// Create adds an item to a shop's menu
	Create(ctx context.Context, item *entity.Item) (*entity.Item, error)

	// Update modifies an existing item
	Update(ctx context.Context, item *entity.Item) (*entity.Item, error)

	// GetActiveByID retrieves an active item
	GetActiveByID(ctx context.Context, id string) (*entity.Item, error)

	// ListByShop retrieves a shop's active items with pagination
	ListByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Item], error)

	// Withdraw soft-deletes an item. Historical orders keep referencing it.
	Withdraw(ctx context.Context, id string) error
}

// OrderService runs orders through their status machine
type OrderService interface {
	// Place creates an order in its initial status, pricing it from the
	// referenced items
	Place(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// Advance moves an order to the next status
	Advance(ctx context.Context, id string, next entity.OrderStatus) (*entity.Order, error)

	// Cancel cancels an order that has not reached a terminal status
	Cancel(ctx context.Context, id string) (*entity.Order, error)

	// GetByID retrieves an order
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser retrieves a user's orders with pagination
	ListByUser(ctx context.Context, userID string, page, size int) (*response.PagedResponse[*entity.Order], error)

	// ListByShop retrieves a shop's orders with pagination
	ListByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Order], error)
}

// PaymentService runs payments through their status machine
type PaymentService interface {
	// Initiate opens a payment for an order and links it back
	Initiate(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)

	// Resolve moves a payment to a settlement status
	Resolve(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Payment, error)

	// RequestRefund marks a settled payment as refund-requested
	RequestRefund(ctx context.Context, id string) (*entity.Payment, error)

	// Refund completes a requested refund
	Refund(ctx context.Context, id string) (*entity.Payment, error)

	// GetByID retrieves a payment
	GetByID(ctx context.Context, id string) (*entity.Payment, error)

	// GetByOrder retrieves the payment attached to an order
	GetByOrder(ctx context.Context, orderID string) (*entity.Payment, error)
}

// ReviewService manages reviews and the rating aggregates they feed
type ReviewService interface {
	// Create records a review against a delivered order and folds its rating
	// into the shop's aggregates
	Create(ctx context.Context, review *entity.Review) (*entity.Review, error)

	// GetByID retrieves a review
	GetByID(ctx context.Context, id string) (*entity.Review, error)

	// ListByShop retrieves a shop's reviews with pagination
	ListByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Review], error)

	// ListByOrder retrieves the reviews written against an order
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error)
}

// SupportService manages customer support tickets
type SupportService interface {
	// Open files a new ticket
	Open(ctx context.Context, ticket *entity.Support) (*entity.Support, error)

	// Resolve closes a ticket, stamping the resolution time once
	Resolve(ctx context.Context, id string) (*entity.Support, error)

	// GetByID retrieves a ticket
	GetByID(ctx context.Context, id string) (*entity.Support, error)

	// ListUnsolvedByShop retrieves a shop's open tickets with pagination
	ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Support], error)
}
