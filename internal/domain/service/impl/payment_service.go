package impl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/observability"
	"github.com/mealmart/mealmart-go/pkg/errors"
)

// paymentService implements service.PaymentService.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *paymentService) Initiate(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	if payment.Amount <= 0 {
		return nil, errors.ErrValidation.WithMessage("payment amount must be positive")
	}

	order, err := s.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, service.ErrOrderNotFound
	}

	existing, err := s.paymentRepo.GetByOrder(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, service.ErrOrderAlreadyPaid
	}

	now := time.Now()
	payment.TransactionID = uuid.NewString()
	payment.Status = entity.PaymentPending
	payment.TimeInitialized = &now
	payment.TimeCompleted = nil

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	order.PaymentID = payment.ID
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.metrics.PaymentTransitions.WithLabelValues(string(entity.PaymentPending)).Inc()
	s.logger.Info("payment initiated",
		zap.String("payment_id", payment.ID),
		zap.String("order_id", payment.OrderID),
		zap.String("transaction_id", payment.TransactionID))
	return payment, nil
}

func (s *paymentService) Resolve(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, service.ErrPaymentNotFound
	}

	if err := payment.Transition(status); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.metrics.PaymentTransitions.WithLabelValues(string(status)).Inc()
	return payment, nil
}

func (s *paymentService) RequestRefund(ctx context.Context, id string) (*entity.Payment, error) {
	return s.Resolve(ctx, id, entity.PaymentRequest)
}

func (s *paymentService) Refund(ctx context.Context, id string) (*entity.Payment, error) {
	return s.Resolve(ctx, id, entity.PaymentRefunded)
}

func (s *paymentService) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, service.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *paymentService) GetByOrder(ctx context.Context, orderID string) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, service.ErrPaymentNotFound
	}
	return payment, nil
}
