package impl

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/dto/response"
	"github.com/mealmart/mealmart-go/internal/validation"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// supportService implements service.SupportService.
type supportService struct {
	supportRepo repository.SupportRepository
	orderRepo   repository.OrderRepository
	logger      *zap.Logger
}

// NewSupportService creates a new SupportService instance.
func NewSupportService(
	supportRepo repository.SupportRepository,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
) service.SupportService {
	return &supportService{
		supportRepo: supportRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

func (s *supportService) Open(ctx context.Context, ticket *entity.Support) (*entity.Support, error) {
	if err := validation.Required("query", ticket.Query); err != nil {
		return nil, err
	}
	switch ticket.Type {
	case entity.SupportOrder, entity.SupportPayment, entity.SupportPlatform:
	default:
		return nil, errors.ErrValidation.WithMessagef("unknown support type %q", ticket.Type)
	}

	if ticket.OrderID != "" {
		order, err := s.orderRepo.GetByID(ctx, ticket.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, service.ErrOrderNotFound
		}
		ticket.ShopID = order.ShopID
		ticket.UserID = order.UserID
	}

	ticket.IsSolved = false
	ticket.TimeAsked = time.Now()
	ticket.TimeSolved = nil

	if err := s.supportRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info("support ticket opened",
		zap.String("ticket_id", ticket.ID),
		zap.String("type", string(ticket.Type)))
	return ticket, nil
}

func (s *supportService) Resolve(ctx context.Context, id string) (*entity.Support, error) {
	ticket, err := s.supportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, service.ErrSupportNotFound
	}
	if ticket.IsSolved {
		return nil, service.ErrTicketAlreadySolved
	}

	now := time.Now()
	ticket.IsSolved = true
	ticket.TimeSolved = &now

	if err := s.supportRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *supportService) GetByID(ctx context.Context, id string) (*entity.Support, error) {
	ticket, err := s.supportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, service.ErrSupportNotFound
	}
	return ticket, nil
}

func (s *supportService) ListUnsolvedByShop(ctx context.Context, shopID string, page, size int) (*response.PagedResponse[*entity.Support], error) {
	page, size = clampPage(page, size)
	tickets, total, err := s.supportRepo.ListUnsolvedByShop(ctx, shopID, page, size)
	if err != nil {
		return nil, err
	}
	result := response.NewPagedResponse(tickets, page, size, total)
	return &result, nil
}
