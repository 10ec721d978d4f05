package dao

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// ItemDAO provides data access for menu items. Items share the accounts'
// soft-delete behavior: withdrawn items disappear from reads but stay stored
// for the orders that reference them.
type ItemDAO interface {
	Create(ctx context.Context, item *entity.Item) error
	Update(ctx context.Context, item *entity.Item) error
	FindActiveByID(ctx context.Context, id string) (*entity.Item, error)
	ListActiveByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Item, int64, error)
	Deactivate(ctx context.Context, id string) error
}

// OrderDAO provides data access for orders
type OrderDAO interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, page, size int) ([]*entity.Order, int64, error)
	ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Order, int64, error)
}

// PaymentDAO provides data access for payments
type PaymentDAO interface {
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id string) (*entity.Payment, error)
	FindByOrder(ctx context.Context, orderID string) (*entity.Payment, error)
}

// ReviewDAO provides data access for reviews
type ReviewDAO interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id string) (*entity.Review, error)
	ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Review, int64, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error)
}

// SupportDAO provides data access for support tickets
type SupportDAO interface {
	Create(ctx context.Context, ticket *entity.Support) error
	Update(ctx context.Context, ticket *entity.Support) error
	FindByID(ctx context.Context, id string) (*entity.Support, error)
	ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Support, int64, error)
}
