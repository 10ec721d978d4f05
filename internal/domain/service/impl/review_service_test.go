package impl

import (
	"context"
	"math"
	"testing"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/internal/testutil"
	"github.com/mealmart/mealmart-go/internal/testutil/mocks"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

type reviewFixture struct {
	svc      service.ReviewService
	shopRepo *mocks.MockAccountRepository[*entity.Shop]
	itemRepo *mocks.MockItemRepository
	shop     *entity.Shop
	item     *entity.Item
	order    *entity.Order
}

func setupReviewService(t *testing.T) *reviewFixture {
	t.Helper()
	ctx := context.Background()

	reviewRepo := mocks.NewMockReviewRepository()
	orderRepo := mocks.NewMockOrderRepository()
	shopRepo := mocks.NewMockAccountRepository[*entity.Shop]()
	itemRepo := mocks.NewMockItemRepository()

	shop := &entity.Shop{Account: entity.Account{
		Name:     "Rated Shop",
		Email:    testutil.UniqueEmail("rated"),
		Phone:    "5553330000",
		IsActive: true,
	}}
	if err := shopRepo.Create(ctx, shop); err != nil {
		t.Fatalf("Create() shop error = %v", err)
	}

	item := &entity.Item{Name: "Dish", ShopID: shop.ID, Price: 90, IsActive: true}
	if err := itemRepo.Create(ctx, item); err != nil {
		t.Fatalf("Create() item error = %v", err)
	}

	order := &entity.Order{
		ShopID:  shop.ID,
		UserID:  "user-1",
		ItemIDs: []string{item.ID},
		Status:  entity.OrderDelivered,
	}
	if err := orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("Create() order error = %v", err)
	}

	svc := NewReviewService(reviewRepo, orderRepo, shopRepo, itemRepo, observability.NewMetrics(), testutil.Logger(t))
	return &reviewFixture{svc: svc, shopRepo: shopRepo, itemRepo: itemRepo, shop: shop, item: item, order: order}
}

func TestReviewService_Create(t *testing.T) {
	f := setupReviewService(t)
	ctx := context.Background()

	review, err := f.svc.Create(ctx, &entity.Review{
		OrderID: f.order.ID,
		Rating:  4,
		Review:  "good",
		ItemIDs: []string{f.item.ID},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if review.ShopID != f.shop.ID {
		t.Errorf("Create() ShopID = %v, want %v", review.ShopID, f.shop.ID)
	}
	if review.UserID != f.order.UserID {
		t.Errorf("Create() UserID = %v, want %v", review.UserID, f.order.UserID)
	}
}

func TestReviewService_Create_RatingBounds(t *testing.T) {
	f := setupReviewService(t)
	ctx := context.Background()

	for _, rating := range []float64{0, 6} {
		_, err := f.svc.Create(ctx, &entity.Review{OrderID: f.order.ID, Rating: rating})
		if !errors.IsValidation(err) {
			t.Errorf("Create() rating %v error = %v, want validation error", rating, err)
		}
	}
}

func TestReviewService_Create_RequiresDeliveredOrder(t *testing.T) {
	f := setupReviewService(t)
	ctx := context.Background()

	f.order.Status = entity.OrderPreparing
	_, err := f.svc.Create(ctx, &entity.Review{OrderID: f.order.ID, Rating: 5})
	if !errors.IsValidation(err) {
		t.Errorf("Create() on undelivered order error = %v, want validation error", err)
	}

	_, err = f.svc.Create(ctx, &entity.Review{OrderID: "missing", Rating: 5})
	if !errors.IsNotFound(err) {
		t.Errorf("Create() on unknown order error = %v, want not found", err)
	}
}

func TestReviewService_Create_FoldsAggregates(t *testing.T) {
	f := setupReviewService(t)
	ctx := context.Background()

	ratings := []float64{5, 3}
	for _, rating := range ratings {
		if _, err := f.svc.Create(ctx, &entity.Review{
			OrderID: f.order.ID,
			Rating:  rating,
			ItemIDs: []string{f.item.ID},
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	shop, _ := f.shopRepo.Stored(f.shop.ID)
	if shop.RatingsQuantity != 2 {
		t.Errorf("shop RatingsQuantity = %d, want 2", shop.RatingsQuantity)
	}
	if math.Abs(shop.RatingsAverage-4) > 1e-9 {
		t.Errorf("shop RatingsAverage = %v, want 4", shop.RatingsAverage)
	}

	item, err := f.itemRepo.GetActiveByID(ctx, f.item.ID)
	if err != nil {
		t.Fatalf("GetActiveByID() error = %v", err)
	}
	if item.RatingsQuantity != 2 {
		t.Errorf("item RatingsQuantity = %d, want 2", item.RatingsQuantity)
	}
	if math.Abs(item.RatingsAverage-4) > 1e-9 {
		t.Errorf("item RatingsAverage = %v, want 4", item.RatingsAverage)
	}
}

func TestReviewService_ListByOrder(t *testing.T) {
	f := setupReviewService(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, &entity.Review{OrderID: f.order.ID, Rating: 5}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	reviews, err := f.svc.ListByOrder(ctx, f.order.ID)
	if err != nil {
		t.Fatalf("ListByOrder() error = %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("ListByOrder() reviews = %d, want 1", len(reviews))
	}
}
