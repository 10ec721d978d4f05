package impl

import (
	"context"
	"testing"
	"time"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/testutil"
	"github.com/mealmart/mealmart-go/internal/testutil/mocks"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

func setupSupportService(t *testing.T) (service.SupportService, *mocks.MockOrderRepository) {
	orderRepo := mocks.NewMockOrderRepository()
	supportRepo := mocks.NewMockSupportRepository()
	svc := NewSupportService(supportRepo, orderRepo, testutil.Logger(t))
	return svc, orderRepo
}

func TestSupportService_Open(t *testing.T) {
	svc, orderRepo := setupSupportService(t)
	ctx := context.Background()

	order := &entity.Order{ShopID: "shop-1", UserID: "user-1", Status: entity.OrderDelivered}
	if err := orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("Create() order error = %v", err)
	}

	ticket, err := svc.Open(ctx, &entity.Support{
		OrderID: order.ID,
		Query:   "order arrived cold",
		Type:    entity.SupportOrder,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if ticket.IsSolved {
		t.Error("Open() created a solved ticket")
	}
	if ticket.TimeAsked.IsZero() {
		t.Error("Open() did not stamp the asked time")
	}
	if ticket.ShopID != order.ShopID || ticket.UserID != order.UserID {
		t.Error("Open() did not adopt the order's references")
	}
}

func TestSupportService_Open_Validation(t *testing.T) {
	svc, _ := setupSupportService(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, &entity.Support{Type: entity.SupportPlatform})
	if !errors.IsValidation(err) {
		t.Errorf("Open() without query error = %v, want validation error", err)
	}

	_, err = svc.Open(ctx, &entity.Support{Query: "help", Type: "BOGUS"})
	if !errors.IsValidation(err) {
		t.Errorf("Open() with unknown type error = %v, want validation error", err)
	}

	_, err = svc.Open(ctx, &entity.Support{Query: "help", Type: entity.SupportOrder, OrderID: "missing"})
	if !errors.IsNotFound(err) {
		t.Errorf("Open() with unknown order error = %v, want not found", err)
	}
}

func TestSupportService_Resolve(t *testing.T) {
	svc, _ := setupSupportService(t)
	ctx := context.Background()

	ticket, err := svc.Open(ctx, &entity.Support{Query: "billing question", Type: entity.SupportPlatform})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	resolved, err := svc.Resolve(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !resolved.IsSolved {
		t.Error("Resolve() did not mark the ticket solved")
	}
	if resolved.TimeSolved == nil {
		t.Fatal("Resolve() did not stamp the solved time")
	}

	firstStamp := *resolved.TimeSolved
	time.Sleep(time.Millisecond)

	// The stamp is written once; a second resolve is rejected.
	if _, err := svc.Resolve(ctx, ticket.ID); !errors.IsConflict(err) {
		t.Errorf("Resolve() twice error = %v, want conflict", err)
	}
	again, err := svc.GetByID(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !again.TimeSolved.Equal(firstStamp) {
		t.Error("second resolve moved the solved stamp")
	}
}

func TestSupportService_ListUnsolvedByShop(t *testing.T) {
	svc, orderRepo := setupSupportService(t)
	ctx := context.Background()

	order := &entity.Order{ShopID: "shop-1", UserID: "user-1", Status: entity.OrderDelivered}
	if err := orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("Create() order error = %v", err)
	}

	open, err := svc.Open(ctx, &entity.Support{OrderID: order.ID, Query: "late", Type: entity.SupportOrder})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	closed, err := svc.Open(ctx, &entity.Support{OrderID: order.ID, Query: "cold", Type: entity.SupportOrder})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := svc.Resolve(ctx, closed.ID); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	page, err := svc.ListUnsolvedByShop(ctx, "shop-1", 1, 10)
	if err != nil {
		t.Fatalf("ListUnsolvedByShop() error = %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("ListUnsolvedByShop() items = %d, want 1", len(page.Items))
	}
	if page.Items[0].ID != open.ID {
		t.Errorf("ListUnsolvedByShop() returned %v, want %v", page.Items[0].ID, open.ID)
	}
}
