package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/internal/validation"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// itemService implements service.ItemService.
type itemService struct {
	itemRepo repository.ItemRepository
	shopRepo repository.ShopRepository
	logger   *zap.Logger
}

// NewItemService creates a new ItemService instance.
func NewItemService(
	itemRepo repository.ItemRepository,
	shopRepo repository.ShopRepository,
	logger *zap.Logger,
) service.ItemService {
	return &itemService{
		itemRepo: itemRepo,
		shopRepo: shopRepo,
		logger:   logger,
	}
}

func (s *itemService) Create(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	if err := s.validate(item); err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.GetActiveByID(ctx, item.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, service.ErrAccountNotFound.WithMessage("shop not found")
	}

	item.IsActive = true
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	if err := s.validate(item); err != nil {
		return nil, err
	}

	stored, err := s.itemRepo.GetActiveByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, service.ErrItemNotFound
	}

	// Aggregates and the lifecycle flag are not caller-writable.
	item.ShopID = stored.ShopID
	item.RatingsAverage = stored.RatingsAverage
	item.RatingsQuantity = stored.RatingsQuantity
	item.IsActive = stored.IsActive
	item.CreatedAt = stored.CreatedAt

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetActiveByID(ctx context.Context, id string) (*entity.Item, error) {
	item, err := s.itemRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, service.ErrItemNotFound
	}
	return item, nil
}

func (s *itemService) ListByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Item], error) {
	page, size = clampPage(page, size)
	items, total, err := s.itemRepo.ListActiveByShop(ctx, shopID, page, size)
	if err != nil {
		return nil, err
	}
	result := response.NewPagedResponse(items, page, size, total)
	return &result, nil
}

func (s *itemService) Withdraw(ctx context.Context, id string) error {
	return s.itemRepo.Deactivate(ctx, id)
}

func (s *itemService) validate(item *entity.Item) error {
	if err := validation.Required("name", item.Name); err != nil {
		return err
	}
	if item.Price <= 0 {
		return errors.ErrValidation.WithMessage("item price must be positive")
	}
	return nil
}
