package impl

import (
	"context"
	"testing"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/testutil"
	"github.com/mealmart/mealmart-go/internal/testutil/mocks"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

func setupItemService(t *testing.T) (service.ItemService, *entity.Shop, *mocks.MockItemRepository) {
	shopRepo := mocks.NewMockAccountRepository[*entity.Shop]()
	itemRepo := mocks.NewMockItemRepository()

	shop := &entity.Shop{Account: entity.Account{
		Name:     "Menu Shop",
		Email:    testutil.UniqueEmail("menu"),
		Phone:    "5554440000",
		IsActive: true,
	}}
	if err := shopRepo.Create(context.Background(), shop); err != nil {
		t.Fatalf("Create() shop error = %v", err)
	}

	svc := NewItemService(itemRepo, shopRepo, testutil.Logger(t))
	return svc, shop, itemRepo
}

func TestItemService_Create(t *testing.T) {
	svc, shop, _ := setupItemService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, &entity.Item{Name: "Biryani", ShopID: shop.ID, Price: 180, IsVeg: false})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !item.IsActive {
		t.Error("Create() item is not active")
	}
}

func TestItemService_Create_Validation(t *testing.T) {
	svc, shop, _ := setupItemService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &entity.Item{ShopID: shop.ID, Price: 10}); !errors.IsValidation(err) {
		t.Errorf("Create() without name error = %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, &entity.Item{Name: "Free", ShopID: shop.ID, Price: 0}); !errors.IsValidation(err) {
		t.Errorf("Create() with zero price error = %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, &entity.Item{Name: "Orphan", ShopID: "missing", Price: 10}); !errors.IsNotFound(err) {
		t.Errorf("Create() with unknown shop error = %v, want not found", err)
	}
}

func TestItemService_Update_PreservesAggregates(t *testing.T) {
	svc, shop, itemRepo := setupItemService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, &entity.Item{Name: "Dosa", ShopID: shop.ID, Price: 60})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	item.RatingsAverage = 4.5
	item.RatingsQuantity = 12
	if err := itemRepo.Update(ctx, item); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	update := &entity.Item{
		ID:              item.ID,
		Name:            "Masala Dosa",
		ShopID:          "other-shop",
		Price:           75,
		RatingsAverage:  1,
		RatingsQuantity: 1,
	}
	saved, err := svc.Update(ctx, update)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if saved.Name != "Masala Dosa" || saved.Price != 75 {
		t.Error("Update() did not apply the caller's fields")
	}
	if saved.ShopID != shop.ID {
		t.Error("Update() let the item move to another shop")
	}
	if saved.RatingsAverage != 4.5 || saved.RatingsQuantity != 12 {
		t.Error("Update() let the caller overwrite rating aggregates")
	}
}

func TestItemService_Withdraw(t *testing.T) {
	svc, shop, _ := setupItemService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, &entity.Item{Name: "Idli", ShopID: shop.ID, Price: 40})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Withdraw(ctx, item.ID); err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}

	if _, err := svc.GetActiveByID(ctx, item.ID); !errors.IsNotFound(err) {
		t.Errorf("GetActiveByID() after withdrawal error = %v, want not found", err)
	}

	page, err := svc.ListByShop(ctx, shop.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListByShop() error = %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("ListByShop() items = %d, want 0", len(page.Items))
	}
}
