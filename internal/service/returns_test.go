package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type returnsDeps struct {
	fulfillment *mocks.MockFulfillmentRepo
	orders      *mocks.MockOrderRepo
	ledger      *mocks.MockLedger
	statuses    *mocks.MockOrderTransitioner
}

func newReturnsService(t *testing.T) (returnsDeps, interface {
	RequestReturn(ctx context.Context, buyerID, orderItemID string, qty int, reason string) (entities.ReturnRequest, error)
	ApproveReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	RejectReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	CompleteReturn(ctx context.Context, returnID, actorID string) (entities.ReturnRequest, error)
}) {
	d := returnsDeps{
		fulfillment: mocks.NewMockFulfillmentRepo(t),
		orders:      mocks.NewMockOrderRepo(t),
		ledger:      mocks.NewMockLedger(t),
		statuses:    mocks.NewMockOrderTransitioner(t),
	}
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return d, service.NewReturnsService(logger, tx, d.fulfillment, d.orders, d.ledger, d.statuses)
}

func TestReturnsService_RequestReturn(t *testing.T) {
	item := entities.OrderItem{ID: "item-1", OrderID: "order-1", SKUID: "sku-1", Quantity: 3}
	delivered := entities.Order{
		ID:      "order-1",
		BuyerID: "buyer-1",
		Status:  entities.OrderStatusDelivered,
		Items:   []entities.OrderItem{item},
	}

	t.Run("OK", func(t *testing.T) {
		d, svc := newReturnsService(t)

		d.orders.EXPECT().GetOrderItemByID(mock.Anything, "item-1").Return(item, nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(delivered, nil)
		d.fulfillment.EXPECT().SumReturnedQty(mock.Anything, "item-1").Return(1, nil)
		d.fulfillment.EXPECT().InsertReturn(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, req entities.ReturnRequest) (entities.ReturnRequest, error) {
				assert.Equal(t, entities.ReturnStatusRequested, req.Status)
				assert.Equal(t, 2, req.Quantity)
				assert.Equal(t, "buyer-1", req.RequestedBy)
				req.ID = "ret-1"
				return req, nil
			})

		req, err := svc.RequestReturn(context.Background(), "buyer-1", "item-1", 2, "wrong size")
		require.NoError(t, err)
		assert.Equal(t, "ret-1", req.ID)
	})

	t.Run("qty above what is left to return", func(t *testing.T) {
		d, svc := newReturnsService(t)

		d.orders.EXPECT().GetOrderItemByID(mock.Anything, "item-1").Return(item, nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(delivered, nil)
		d.fulfillment.EXPECT().SumReturnedQty(mock.Anything, "item-1").Return(2, nil)

		_, err := svc.RequestReturn(context.Background(), "buyer-1", "item-1", 2, "wrong size")
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("order not yet shipped", func(t *testing.T) {
		d, svc := newReturnsService(t)

		paid := delivered
		paid.Status = entities.OrderStatusPaid
		d.orders.EXPECT().GetOrderItemByID(mock.Anything, "item-1").Return(item, nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil)

		_, err := svc.RequestReturn(context.Background(), "buyer-1", "item-1", 1, "changed my mind")

		var transErr entities.InvalidTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, entities.OrderStatusPaid, transErr.From)
	})

	t.Run("not the buyer", func(t *testing.T) {
		d, svc := newReturnsService(t)

		d.orders.EXPECT().GetOrderItemByID(mock.Anything, "item-1").Return(item, nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(delivered, nil)

		_, err := svc.RequestReturn(context.Background(), "intruder", "item-1", 1, "")
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestReturnsService_Moderation(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		d, svc := newReturnsService(t)

		d.fulfillment.EXPECT().GetReturnByID(mock.Anything, "ret-1").
			Return(entities.ReturnRequest{ID: "ret-1", Status: entities.ReturnStatusRequested}, nil)
		d.fulfillment.EXPECT().UpdateReturnStatus(mock.Anything, "ret-1", entities.ReturnStatusApproved).Return(nil)

		req, err := svc.ApproveReturn(context.Background(), "ret-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ReturnStatusApproved, req.Status)
	})

	t.Run("reject after approve conflicts", func(t *testing.T) {
		d, svc := newReturnsService(t)

		d.fulfillment.EXPECT().GetReturnByID(mock.Anything, "ret-1").
			Return(entities.ReturnRequest{ID: "ret-1", Status: entities.ReturnStatusApproved}, nil)

		_, err := svc.RejectReturn(context.Background(), "ret-1")
		assert.ErrorIs(t, err, entities.ErrConflict)
	})
}

func TestReturnsService_CompleteReturn(t *testing.T) {
	item := entities.OrderItem{ID: "item-1", OrderID: "order-1", SKUID: "sku-1", Quantity: 2}
	order := entities.Order{
		ID:      "order-1",
		Status:  entities.OrderStatusDelivered,
		Items:   []entities.OrderItem{item},
		BuyerID: "buyer-1",
	}
	approved := entities.ReturnRequest{
		ID:          "ret-1",
		OrderItemID: "item-1",
		Quantity:    2,
		Status:      entities.ReturnStatusApproved,
	}

	t.Run("restocks and closes a fully returned order", func(t *testing.T) {
		d, svc := newReturnsService(t)

		d.fulfillment.EXPECT().GetReturnByID(mock.Anything, "ret-1").Return(approved, nil)
		d.fulfillment.EXPECT().UpdateReturnStatus(mock.Anything, "ret-1", entities.ReturnStatusCompleted).Return(nil)
		d.orders.EXPECT().GetOrderItemByID(mock.Anything, "item-1").Return(item, nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil)
		d.ledger.EXPECT().Increment(mock.Anything, "sku-1", 2, "order-1", entities.InventoryTxReturn, mock.Anything).Return(nil)
		d.fulfillment.EXPECT().SumReturnedQty(mock.Anything, "item-1", entities.ReturnStatusCompleted).Return(2, nil)
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusReturned, in.To)
				return service.TransitionResult{}, nil
			})

		req, err := svc.CompleteReturn(context.Background(), "ret-1", "staff-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ReturnStatusCompleted, req.Status)
	})

	t.Run("partial return leaves the order status alone", func(t *testing.T) {
		d, svc := newReturnsService(t)

		partial := approved
		partial.Quantity = 1
		d.fulfillment.EXPECT().GetReturnByID(mock.Anything, "ret-1").Return(partial, nil)
		d.fulfillment.EXPECT().UpdateReturnStatus(mock.Anything, "ret-1", entities.ReturnStatusCompleted).Return(nil)
		d.orders.EXPECT().GetOrderItemByID(mock.Anything, "item-1").Return(item, nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil)
		d.ledger.EXPECT().Increment(mock.Anything, "sku-1", 1, "order-1", entities.InventoryTxReturn, mock.Anything).Return(nil)
		d.fulfillment.EXPECT().SumReturnedQty(mock.Anything, "item-1", entities.ReturnStatusCompleted).Return(1, nil)

		_, err := svc.CompleteReturn(context.Background(), "ret-1", "staff-1")
		assert.NoError(t, err)
	})

	t.Run("only approved returns can be completed", func(t *testing.T) {
		d, svc := newReturnsService(t)

		requested := approved
		requested.Status = entities.ReturnStatusRequested
		d.fulfillment.EXPECT().GetReturnByID(mock.Anything, "ret-1").Return(requested, nil)

		_, err := svc.CompleteReturn(context.Background(), "ret-1", "staff-1")
		assert.ErrorIs(t, err, entities.ErrConflict)
	})
}
