package entity

import (
	"time"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

// PaymentType represents the payment instrument
type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentUPI    PaymentType = "UPI"
	PaymentDebit  PaymentType = "DEBIT"
	PaymentCredit PaymentType = "CREDIT"
)

// PaymentStatus represents the payment settlement state
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentCanceled PaymentStatus = "CANCELED"
	PaymentRequest  PaymentStatus = "REQUEST"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// paymentTransitions maps each state to the states reachable from it.
// PENDING is initial; REQUEST (a refund request) may still move to REFUNDED,
// every other non-pending state is terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentSuccess, PaymentFailed, PaymentCanceled, PaymentRequest, PaymentRefunded},
	PaymentRequest:  {PaymentRefunded},
	PaymentSuccess:  {},
	PaymentFailed:   {},
	PaymentCanceled: {},
	PaymentRefunded: {},
}

// Payment records one settlement attempt for an order
type Payment struct {
	ID              string        `json:"id"`
	ShopID          string        `json:"shop_id"`
	UserFromID      string        `json:"user_from_id"`
	UserToID        string        `json:"user_to_id"`
	OrderID         string        `json:"order_id"`
	TransactionID   string        `json:"transaction_id"`
	Type            PaymentType   `json:"payment_type"`
	Status          PaymentStatus `json:"payment_status"`
	Amount          float64       `json:"amount"`
	TimeInitialized *time.Time    `json:"time_initialized,omitempty"`
	TimeCompleted   *time.Time    `json:"time_completed,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// CanTransition reports whether next is reachable from the current status
func (p *Payment) CanTransition(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[p.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition moves the payment to next. Leaving PENDING (or settling a
// REQUEST) stamps TimeCompleted exactly once.
func (p *Payment) Transition(next PaymentStatus) error {
	if !p.CanTransition(next) {
		return errors.ErrValidation.WithMessagef("illegal payment transition %s -> %s", p.Status, next)
	}

	if next != PaymentRequest && p.TimeCompleted == nil {
		now := time.Now()
		p.TimeCompleted = &now
	}

	p.Status = next
	return nil
}

// Terminal reports whether no further transition can leave the current state
func (p *Payment) Terminal() bool {
	return len(paymentTransitions[p.Status]) == 0
}
