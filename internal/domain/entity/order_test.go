package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmart/mealmart-go/pkg/errors"
)

func TestOrder_Transition_HappyPath(t *testing.T) {
	order := &Order{Status: OrderWaiting}

	require.NoError(t, order.Transition(OrderReceived))
	assert.Equal(t, OrderReceived, order.Status)
	require.NotNil(t, order.TimeReceived)

	require.NoError(t, order.Transition(OrderPreparing))
	require.NotNil(t, order.TimePrepared)

	require.NoError(t, order.Transition(OrderDelivered))
	require.NotNil(t, order.TimeDelivered)
	assert.True(t, order.Terminal())
}

func TestOrder_Transition_SkippingStatesFails(t *testing.T) {
	order := &Order{Status: OrderWaiting}

	err := order.Transition(OrderDelivered)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "WAITING -> DELIVERED")
	assert.Equal(t, OrderWaiting, order.Status)
	assert.Nil(t, order.TimeDelivered)
}

func TestOrder_Transition_CancelFromEarlyStates(t *testing.T) {
	for _, from := range []OrderStatus{OrderWaiting, OrderReceived, OrderPreparing} {
		order := &Order{Status: from}
		require.NoError(t, order.Transition(OrderCanceled), "cancel from %s", from)
		assert.Equal(t, OrderCanceled, order.Status)
		require.NotNil(t, order.TimeCanceled)
		assert.True(t, order.Terminal())
	}
}

func TestOrder_Transition_TerminalStatesAreFinal(t *testing.T) {
	delivered := &Order{Status: OrderDelivered}
	assert.Error(t, delivered.Transition(OrderCanceled))

	canceled := &Order{Status: OrderCanceled}
	assert.Error(t, canceled.Transition(OrderReceived))
}

func TestOrder_Transition_StampsOnce(t *testing.T) {
	order := &Order{Status: OrderWaiting}
	require.NoError(t, order.Transition(OrderReceived))
	first := *order.TimeReceived

	// A pre-existing stamp must survive later mutations of the struct
	require.NoError(t, order.Transition(OrderPreparing))
	assert.Equal(t, first, *order.TimeReceived)
}

func TestPayment_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		wantErr bool
	}{
		{"pending to success", PaymentPending, PaymentSuccess, false},
		{"pending to failed", PaymentPending, PaymentFailed, false},
		{"pending to canceled", PaymentPending, PaymentCanceled, false},
		{"pending to refund request", PaymentPending, PaymentRequest, false},
		{"pending to refunded", PaymentPending, PaymentRefunded, false},
		{"request to refunded", PaymentRequest, PaymentRefunded, false},
		{"success is terminal", PaymentSuccess, PaymentRefunded, true},
		{"failed is terminal", PaymentFailed, PaymentSuccess, true},
		{"refunded is terminal", PaymentRefunded, PaymentPending, true},
		{"no going back to pending", PaymentSuccess, PaymentPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := &Payment{Status: tt.from}
			err := payment.Transition(tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				assert.Equal(t, tt.from, payment.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, payment.Status)
			}
		})
	}
}

func TestPayment_Transition_StampsCompletion(t *testing.T) {
	payment := &Payment{Status: PaymentPending}
	require.NoError(t, payment.Transition(PaymentSuccess))
	require.NotNil(t, payment.TimeCompleted)

	// A refund request does not complete the payment
	pending := &Payment{Status: PaymentPending}
	require.NoError(t, pending.Transition(PaymentRequest))
	assert.Nil(t, pending.TimeCompleted)

	require.NoError(t, pending.Transition(PaymentRefunded))
	require.NotNil(t, pending.TimeCompleted)
}
