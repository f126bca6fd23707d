package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := [][2]entities.OrderStatus{
		{entities.OrderStatusPending, entities.OrderStatusPaid},
		{entities.OrderStatusPending, entities.OrderStatusProcessing},
		{entities.OrderStatusPending, entities.OrderStatusCancelled},
		// возврат авторизованного платежа закрывает еще не оплаченный заказ
		{entities.OrderStatusPending, entities.OrderStatusRefunded},
		{entities.OrderStatusPaid, entities.OrderStatusProcessing},
		{entities.OrderStatusPaid, entities.OrderStatusCancelled},
		{entities.OrderStatusPaid, entities.OrderStatusRefunded},
		{entities.OrderStatusProcessing, entities.OrderStatusShipped},
		{entities.OrderStatusProcessing, entities.OrderStatusCancelled},
		{entities.OrderStatusShipped, entities.OrderStatusDelivered},
		{entities.OrderStatusShipped, entities.OrderStatusReturned},
		{entities.OrderStatusDelivered, entities.OrderStatusReturned},
		{entities.OrderStatusDelivered, entities.OrderStatusRefunded},
		{entities.OrderStatusReturned, entities.OrderStatusRefunded},
	}
	for _, edge := range allowed {
		assert.True(t, edge[0].CanTransitionTo(edge[1]), "%s -> %s", edge[0], edge[1])
	}

	denied := [][2]entities.OrderStatus{
		{entities.OrderStatusPending, entities.OrderStatusShipped},
		{entities.OrderStatusDelivered, entities.OrderStatusPending},
		{entities.OrderStatusCancelled, entities.OrderStatusPaid},
		{entities.OrderStatusRefunded, entities.OrderStatusPending},
		{entities.OrderStatusShipped, entities.OrderStatusCancelled},
	}
	for _, edge := range denied {
		assert.False(t, edge[0].CanTransitionTo(edge[1]), "%s -> %s", edge[0], edge[1])
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	for _, terminal := range []entities.OrderStatus{entities.OrderStatusCancelled, entities.OrderStatusRefunded} {
		for _, to := range []entities.OrderStatus{
			entities.OrderStatusPending, entities.OrderStatusPaid, entities.OrderStatusProcessing,
			entities.OrderStatusShipped, entities.OrderStatusDelivered, entities.OrderStatusReturned,
		} {
			assert.False(t, terminal.CanTransitionTo(to), "%s -> %s", terminal, to)
		}
	}
}

func TestOrderStatus_RestockReason(t *testing.T) {
	reason, ok := entities.OrderStatusCancelled.RestockReason()
	assert.True(t, ok)
	assert.Equal(t, entities.InventoryTxCancellation, reason)

	reason, ok = entities.OrderStatusRefunded.RestockReason()
	assert.True(t, ok)
	assert.Equal(t, entities.InventoryTxReturn, reason)

	_, ok = entities.OrderStatusShipped.RestockReason()
	assert.False(t, ok)
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.OrderStatusPending.Valid())
	assert.False(t, entities.OrderStatus("TELEPORTED").Valid())
}

func TestPaymentStatus(t *testing.T) {
	assert.True(t, entities.PaymentStatusPending.CanTransitionTo(entities.PaymentStatusAuthorized))
	assert.True(t, entities.PaymentStatusAuthorized.CanTransitionTo(entities.PaymentStatusPaid))
	assert.True(t, entities.PaymentStatusPartiallyRefunded.CanTransitionTo(entities.PaymentStatusRefunded))
	assert.False(t, entities.PaymentStatusPending.CanTransitionTo(entities.PaymentStatusPaid))
	assert.False(t, entities.PaymentStatusFailed.CanTransitionTo(entities.PaymentStatusAuthorized))
	assert.False(t, entities.PaymentStatusRefunded.CanTransitionTo(entities.PaymentStatusPartiallyRefunded))

	assert.True(t, entities.PaymentStatusAuthorized.Refundable())
	assert.True(t, entities.PaymentStatusPaid.Refundable())
	assert.True(t, entities.PaymentStatusPartiallyRefunded.Refundable())
	assert.False(t, entities.PaymentStatusPending.Refundable())
	assert.False(t, entities.PaymentStatusFailed.Refundable())
}
