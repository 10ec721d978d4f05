package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// orderService implements service.OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	shopRepo  repository.ShopRepository
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	shopRepo repository.ShopRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.OrderService {
	return &orderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		shopRepo:  shopRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *orderService) Place(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if order.ShopID == "" || order.UserID == "" {
		return nil, errors.ErrValidation.WithMessage("order requires a shop and a user")
	}
	if len(order.ItemIDs) == 0 {
		return nil, errors.ErrValidation.WithMessage("order requires at least one item")
	}

	// Price from the live menu. A withdrawn or unknown item sinks the order.
	var total float64
	for _, itemID := range order.ItemIDs {
		item, err := s.itemRepo.GetActiveByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, errors.ErrValidation.WithMessagef("item %s is not available", itemID)
		}
		total += item.Price
	}

	order.TotalPrice = total
	order.Status = entity.OrderWaiting
	order.TimeReceived = nil
	order.TimePrepared = nil
	order.TimeDelivered = nil
	order.TimeCanceled = nil

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.metrics.OrderTransitions.WithLabelValues(string(entity.OrderWaiting)).Inc()
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("shop_id", order.ShopID),
		zap.Float64("total", order.TotalPrice))
	return order, nil
}

func (s *orderService) Advance(ctx context.Context, id string, next entity.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, service.ErrOrderNotFound
	}

	if err := order.Transition(next); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	s.metrics.OrderTransitions.WithLabelValues(string(next)).Inc()

	if next == entity.OrderDelivered {
		s.recordDelivery(ctx, order)
	}
	return order, nil
}

func (s *orderService) Cancel(ctx context.Context, id string) (*entity.Order, error) {
	return s.Advance(ctx, id, entity.OrderCanceled)
}

func (s *orderService) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, service.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID string, page, size int) (*response.PagedResponse[*entity.Order], error) {
	page, size = clampPage(page, size)
	orders, total, err := s.orderRepo.ListByUser(ctx, userID, page, size)
	if err != nil {
		return nil, err
	}
	result := response.NewPagedResponse(orders, page, size, total)
	return &result, nil
}

func (s *orderService) ListByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Order], error) {
	page, size = clampPage(page, size)
	orders, total, err := s.orderRepo.ListByShop(ctx, shopID, page, size)
	if err != nil {
		return nil, err
	}
	result := response.NewPagedResponse(orders, page, size, total)
	return &result, nil
}

// recordDelivery folds a delivered order into the shop's denormalized
// aggregates. Aggregate drift is tolerable; a failed fold never fails the
// delivery itself.
func (s *orderService) recordDelivery(ctx context.Context, order *entity.Order) {
	shop, err := s.shopRepo.GetActiveByID(ctx, order.ShopID)
	if err != nil || shop == nil {
		s.logger.Warn("shop aggregate update skipped",
			zap.String("order_id", order.ID),
			zap.String("shop_id", order.ShopID),
			zap.Error(err))
		return
	}

	shop.OrdersTotal++
	shop.OrdersTotalAmount += order.TotalPrice
	if order.TimeReceived != nil && order.TimeDelivered != nil {
		minutes := order.TimeDelivered.Sub(*order.TimeReceived).Minutes()
		shop.TimeAverage = (shop.TimeAverage*float64(shop.OrdersTotal-1) + minutes) / float64(shop.OrdersTotal)
	}

	if err := s.shopRepo.Update(ctx, shop); err != nil {
		s.logger.Warn("shop aggregate update failed",
			zap.String("shop_id", shop.ID),
			zap.Error(err))
	}
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size
}
