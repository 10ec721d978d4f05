package entity

import (
	"time"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

// OrderStatus represents the order fulfillment state
type OrderStatus string

const (
	OrderWaiting   OrderStatus = "WAITING"
	OrderReceived  OrderStatus = "RECEIVED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCanceled  OrderStatus = "CANCELED"
)

// orderTransitions maps each state to the states reachable from it.
// DELIVERED and CANCELED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderWaiting:   {OrderReceived, OrderCanceled},
	OrderReceived:  {OrderPreparing, OrderCanceled},
	OrderPreparing: {OrderDelivered, OrderCanceled},
	OrderDelivered: {},
	OrderCanceled:  {},
}

// Order references its shop, user, payment and items by id. Deleting any of
// them never cascades to the order; the references simply go stale.
type Order struct {
	ID            string      `json:"id"`
	ShopID        string      `json:"shop_id"`
	UserID        string      `json:"user_id"`
	PaymentID     string      `json:"payment_id,omitempty"`
	ItemIDs       []string    `json:"item_ids"`
	Status        OrderStatus `json:"status"`
	TotalPrice    float64     `json:"total_price"`
	TimeReceived  *time.Time  `json:"time_received,omitempty"`
	TimePrepared  *time.Time  `json:"time_prepared,omitempty"`
	TimeDelivered *time.Time  `json:"time_delivered,omitempty"`
	TimeCanceled  *time.Time  `json:"time_canceled,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CanTransition reports whether next is reachable from the current status
func (o *Order) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition moves the order to next, stamping the state's timestamp exactly
// once. Illegal jumps fail with a validation error naming the transition.
func (o *Order) Transition(next OrderStatus) error {
	if !o.CanTransition(next) {
		return errors.ErrValidation.WithMessagef("illegal order transition %s -> %s", o.Status, next)
	}

	now := time.Now()
	switch next {
	case OrderReceived:
		if o.TimeReceived == nil {
			o.TimeReceived = &now
		}
	case OrderPreparing:
		if o.TimePrepared == nil {
			o.TimePrepared = &now
		}
	case OrderDelivered:
		if o.TimeDelivered == nil {
			o.TimeDelivered = &now
		}
	case OrderCanceled:
		if o.TimeCanceled == nil {
			o.TimeCanceled = &now
		}
	}

	o.Status = next
	return nil
}

// Terminal reports whether no further transition can leave the current state
func (o *Order) Terminal() bool {
	return len(orderTransitions[o.Status]) == 0
}
