package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
)

// MockItemRepository is an in-memory implementation of ItemRepository
type MockItemRepository struct {
	mu     sync.RWMutex
	items  map[string]*entity.Item
	order  []string
	nextID int

	CreateErr error
	GetErr    error
	UpdateErr error
}

var _ repository.ItemRepository = (*MockItemRepository)(nil)

func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{items: make(map[string]*entity.Item), nextID: 1}
}

func (r *MockItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", r.nextID)
		r.nextID++
	}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *MockItemRepository) Update(ctx context.Context, item *entity.Item) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *MockItemRepository) GetActiveByID(ctx context.Context, id string) (*entity.Item, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if item, ok := r.items[id]; ok && item.IsActive {
		return item, nil
	}
	return nil, nil
}

func (r *MockItemRepository) ListActiveByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Item, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Item
	for _, id := range r.order {
		item, ok := r.items[id]
		if ok && item.IsActive && item.ShopID == shopID {
			matched = append(matched, item)
		}
	}
	return paginate(matched, page, size)
}

func (r *MockItemRepository) Deactivate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item, ok := r.items[id]; ok {
		item.IsActive = false
	}
	return nil
}

// MockOrderRepository is an in-memory implementation of OrderRepository
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
	order  []string
	nextID int

	CreateErr error
	GetErr    error
	UpdateErr error
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[string]*entity.Order), nextID: 1}
}

func (r *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", r.nextID)
		r.nextID++
	}
	r.orders[order.ID] = order
	r.order = append(r.order, order.ID)
	return nil
}

func (r *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return nil
}

func (r *MockOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orders[id], nil
}

func (r *MockOrderRepository) ListByUser(ctx context.Context, userID string, page, size int) ([]*entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Order
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok && o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return paginate(matched, page, size)
}

func (r *MockOrderRepository) ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Order
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok && o.ShopID == shopID {
			matched = append(matched, o)
		}
	}
	return paginate(matched, page, size)
}

// MockPaymentRepository is an in-memory implementation of PaymentRepository
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*entity.Payment
	nextID   int

	CreateErr error
	GetErr    error
	UpdateErr error
}

var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{payments: make(map[string]*entity.Payment), nextID: 1}
}

func (r *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("payment-%d", r.nextID)
		r.nextID++
	}
	r.payments[payment.ID] = payment
	return nil
}

func (r *MockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = payment
	return nil
}

func (r *MockPaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.payments[id], nil
}

func (r *MockPaymentRepository) GetByOrder(ctx context.Context, orderID string) (*entity.Payment, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, nil
}

// MockReviewRepository is an in-memory implementation of ReviewRepository
type MockReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]*entity.Review
	order   []string
	nextID  int

	CreateErr error
}

var _ repository.ReviewRepository = (*MockReviewRepository)(nil)

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{reviews: make(map[string]*entity.Review), nextID: 1}
}

func (r *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", r.nextID)
		r.nextID++
	}
	r.reviews[review.ID] = review
	r.order = append(r.order, review.ID)
	return nil
}

func (r *MockReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reviews[id], nil
}

func (r *MockReviewRepository) ListByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Review, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Review
	for _, id := range r.order {
		if rv, ok := r.reviews[id]; ok && rv.ShopID == shopID {
			matched = append(matched, rv)
		}
	}
	return paginate(matched, page, size)
}

func (r *MockReviewRepository) ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Review
	for _, id := range r.order {
		if rv, ok := r.reviews[id]; ok && rv.OrderID == orderID {
			matched = append(matched, rv)
		}
	}
	return matched, nil
}

// MockSupportRepository is an in-memory implementation of SupportRepository
type MockSupportRepository struct {
	mu      sync.RWMutex
	tickets map[string]*entity.Support
	order   []string
	nextID  int

	CreateErr error
	UpdateErr error
}

var _ repository.SupportRepository = (*MockSupportRepository)(nil)

func NewMockSupportRepository() *MockSupportRepository {
	return &MockSupportRepository{tickets: make(map[string]*entity.Support), nextID: 1}
}

func (r *MockSupportRepository) Create(ctx context.Context, ticket *entity.Support) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticket.ID == "" {
		ticket.ID = fmt.Sprintf("ticket-%d", r.nextID)
		r.nextID++
	}
	r.tickets[ticket.ID] = ticket
	r.order = append(r.order, ticket.ID)
	return nil
}

func (r *MockSupportRepository) Update(ctx context.Context, ticket *entity.Support) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets[ticket.ID] = ticket
	return nil
}

func (r *MockSupportRepository) GetByID(ctx context.Context, id string) (*entity.Support, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tickets[id], nil
}

func (r *MockSupportRepository) ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) ([]*entity.Support, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*entity.Support
	for _, id := range r.order {
		if t, ok := r.tickets[id]; ok && t.ShopID == shopID && !t.IsSolved {
			matched = append(matched, t)
		}
	}
	return paginate(matched, page, size)
}

func paginate[T any](matched []T, page, size int) ([]T, int64, error) {
	total := int64(len(matched))
	start := (page - 1) * size
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
