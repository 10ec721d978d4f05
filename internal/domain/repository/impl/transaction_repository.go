package impl

import (
	"context"

	"github.com/mealmart/mealmart-go/internal/domain/dao"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
)

// itemRepository implements repository.ItemRepository by delegating to ItemDAO.
type itemRepository struct {
	dao dao.ItemDAO
}

// NewItemRepository creates a new ItemRepository instance.
func NewItemRepository(d dao.ItemDAO) repository.ItemRepository {
	return &itemRepository{dao: d}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return r.dao.Create(ctx, item)
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return r.dao.Update(ctx, item)
}

func (r *itemRepository) GetActiveByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.dao.FindActiveByID(ctx, id)
}

func (r *itemRepository) ListActiveByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Item, int64, error) {
	return r.dao.ListActiveByShop(ctx, shopID, page, size)
}

func (r *itemRepository) Deactivate(ctx context.Context, id string) error {
	return r.dao.Deactivate(ctx, id)
}

// orderRepository implements repository.OrderRepository by delegating to OrderDAO.
type orderRepository struct {
	dao dao.OrderDAO
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(d dao.OrderDAO) repository.OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.dao.Create(ctx, order)
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.dao.Update(ctx, order)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string, page, size int) ([]*entity.Order, int64, error) {
	return r.dao.ListByUser(ctx, userID, page, size)
}

func (r *orderRepository) ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Order, int64, error) {
	return r.dao.ListByShop(ctx, shopID, page, size)
}

// paymentRepository implements repository.PaymentRepository by delegating to PaymentDAO.
type paymentRepository struct {
	dao dao.PaymentDAO
}

// NewPaymentRepository creates a new PaymentRepository instance.
func NewPaymentRepository(d dao.PaymentDAO) repository.PaymentRepository {
	return &paymentRepository{dao: d}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.dao.Create(ctx, payment)
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.dao.Update(ctx, payment)
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *paymentRepository) GetByOrder(ctx context.Context, orderID string) (*entity.Payment, error) {
	return r.dao.FindByOrder(ctx, orderID)
}

// reviewRepository implements repository.ReviewRepository by delegating to ReviewDAO.
type reviewRepository struct {
	dao dao.ReviewDAO
}

// NewReviewRepository creates a new ReviewRepository instance.
func NewReviewRepository(d dao.ReviewDAO) repository.ReviewRepository {
	return &reviewRepository{dao: d}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.dao.Create(ctx, review)
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *reviewRepository) ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Review, int64, error) {
	return r.dao.ListByShop(ctx, shopID, page, size)
}

func (r *reviewRepository) ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error) {
	return r.dao.ListByOrder(ctx, orderID)
}

// supportRepository implements repository.SupportRepository by delegating to SupportDAO.
type supportRepository struct {
	dao dao.SupportDAO
}

// NewSupportRepository creates a new SupportRepository instance.
func NewSupportRepository(d dao.SupportDAO) repository.SupportRepository {
	return &supportRepository{dao: d}
}

func (r *supportRepository) Create(ctx context.Context, ticket *entity.Support) error {
	return r.dao.Create(ctx, ticket)
}

func (r *supportRepository) Update(ctx context.Context, ticket *entity.Support) error {
	return r.dao.Update(ctx, ticket)
}

func (r *supportRepository) GetByID(ctx context.Context, id string) (*entity.Support, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *supportRepository) ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Support, int64, error) {
	return r.dao.ListUnsolvedByShop(ctx, shopID, page, size)
}
