package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/internal/validation"
)

// reviewService implements service.ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
	shopRepo   repository.ShopRepository
	itemRepo   repository.ItemRepository
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	shopRepo repository.ShopRepository,
	itemRepo repository.ItemRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		shopRepo:   shopRepo,
		itemRepo:   itemRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

func (s *reviewService) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if err := validation.Rating(review.Rating); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, review.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, service.ErrOrderNotFound
	}
	if order.Status != entity.OrderDelivered {
		return nil, service.ErrOrderNotDelivered
	}

	review.ShopID = order.ShopID
	review.UserID = order.UserID
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.foldIntoAggregates(ctx, review)
	return review, nil
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, service.ErrReviewNotFound
	}
	return review, nil
}

func (s *reviewService) ListByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Review], error) {
	page, size = clampPage(page, size)
	reviews, total, err := s.reviewRepo.ListByShop(ctx, shopID, page, size)
	if err != nil {
		return nil, err
	}
	result := response.NewPagedResponse(reviews, page, size, total)
	return &result, nil
}

func (s *reviewService) ListByOrder(ctx context.Context, orderID string) ([]*entity.Review, error) {
	return s.reviewRepo.ListByOrder(ctx, orderID)
}

// foldIntoAggregates updates the shop's and the rated items' denormalized
// rating fields with the new sample. The review itself is already stored;
// aggregate failures are logged, not surfaced.
func (s *reviewService) foldIntoAggregates(ctx context.Context, review *entity.Review) {
	shop, err := s.shopRepo.GetActiveByID(ctx, review.ShopID)
	if err == nil && shop != nil {
		shop.RatingsAverage = foldRating(shop.RatingsAverage, shop.RatingsQuantity, review.Rating)
		shop.RatingsQuantity++
		if err := s.shopRepo.Update(ctx, shop); err != nil {
			s.logger.Warn("shop rating aggregate update failed",
				zap.String("shop_id", shop.ID), zap.Error(err))
		}
	}

	for _, itemID := range review.ItemIDs {
		item, err := s.itemRepo.GetActiveByID(ctx, itemID)
		if err != nil || item == nil {
			continue
		}
		item.RatingsAverage = foldRating(item.RatingsAverage, item.RatingsQuantity, review.Rating)
		item.RatingsQuantity++
		if err := s.itemRepo.Update(ctx, item); err != nil {
			s.logger.Warn("item rating aggregate update failed",
				zap.String("item_id", item.ID), zap.Error(err))
		}
	}
}

func foldRating(average float64, quantity int64, rating float64) float64 {
	return (average*float64(quantity) + rating) / float64(quantity+1)
}
