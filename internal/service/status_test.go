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

func TestStatusService_Transition(t *testing.T) {
	order := entities.Order{
		ID:          "order-1",
		OrderNumber: "ORD-20260801-12345",
		BuyerID:     "buyer-1",
		Status:      entities.OrderStatusPaid,
		Items: []entities.OrderItem{
			{ID: "item-1", OrderID: "order-1", SKUID: "sku-1", Quantity: 2},
			{ID: "item-2", OrderID: "order-1", SKUID: "sku-2", Quantity: 1},
		},
	}

	type deps struct {
		orders   *mocks.MockOrderRepo
		ledger   *mocks.MockLedger
		cache    *mocks.MockCache
		notifier *mocks.MockNotifier
	}

	testCases := []struct {
		name         string
		input        service.TransitionInput
		mockBehavior func(d deps)
		check        func(t *testing.T, res service.TransitionResult)
		wantErr      error
	}{
		{
			name:  "cancellation restocks every line",
			input: service.TransitionInput{To: entities.OrderStatusCancelled, ActorID: "staff-1", Notes: "buyer request"},
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").Return(order, nil)
				d.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.OrderStatusCancelled, "").Return(nil)
				d.orders.EXPECT().HasTransitionTo(mock.Anything, "order-1",
					entities.OrderStatusCancelled, entities.OrderStatusRefunded, entities.OrderStatusReturned).
					Return(false, nil)
				d.orders.EXPECT().InsertHistory(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, h entities.OrderHistory) (entities.OrderHistory, error) {
						assert.Equal(t, entities.OrderStatusPaid, h.FromStatus)
						assert.Equal(t, entities.OrderStatusCancelled, h.ToStatus)
						assert.Equal(t, "staff-1", h.ActorID)
						h.ID = "hist-1"
						return h, nil
					})
				d.ledger.EXPECT().Increment(mock.Anything, "sku-1", 2, "order-1", entities.InventoryTxCancellation, mock.Anything).Return(nil)
				d.ledger.EXPECT().Increment(mock.Anything, "sku-2", 1, "order-1", entities.InventoryTxCancellation, mock.Anything).Return(nil)
				d.cache.EXPECT().Delete("order-1").Return()
				d.notifier.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything).Return()
			},
			check: func(t *testing.T, res service.TransitionResult) {
				assert.False(t, res.NoOp)
				assert.Equal(t, entities.OrderStatusCancelled, res.Order.Status)
				assert.Equal(t, "hist-1", res.History.ID)
			},
		},
		{
			name:  "restock happens at most once",
			input: service.TransitionInput{To: entities.OrderStatusRefunded, ActorID: "staff-1"},
			mockBehavior: func(d deps) {
				delivered := order
				delivered.Status = entities.OrderStatusDelivered
				d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").Return(delivered, nil)
				d.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.OrderStatusRefunded, "").Return(nil)
				d.orders.EXPECT().HasTransitionTo(mock.Anything, "order-1",
					entities.OrderStatusCancelled, entities.OrderStatusRefunded, entities.OrderStatusReturned).
					Return(true, nil)
				d.orders.EXPECT().InsertHistory(mock.Anything, mock.Anything).
					Return(entities.OrderHistory{ID: "hist-2"}, nil)
				// Increment не ожидается вовсе
				d.cache.EXPECT().Delete("order-1").Return()
				d.notifier.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything).Return()
			},
			check: func(t *testing.T, res service.TransitionResult) {
				assert.False(t, res.NoOp)
			},
		},
		{
			name:  "same status is a no-op",
			input: service.TransitionInput{To: entities.OrderStatusPaid, ActorID: "staff-1"},
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").Return(order, nil)
				// ни истории, ни сброса кеша, ни уведомлений
			},
			check: func(t *testing.T, res service.TransitionResult) {
				assert.True(t, res.NoOp)
				assert.Equal(t, entities.OrderStatusPaid, res.Order.Status)
			},
		},
		{
			name:  "edge missing in the graph",
			input: service.TransitionInput{To: entities.OrderStatusDelivered, ActorID: "staff-1"},
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").Return(order, nil)
			},
			wantErr: entities.InvalidTransitionError{From: entities.OrderStatusPaid, To: entities.OrderStatusDelivered},
		},
		{
			name: "shipped carries a tracking number",
			input: service.TransitionInput{
				To:             entities.OrderStatusShipped,
				ActorID:        "staff-1",
				TrackingNumber: "TRK-42",
			},
			mockBehavior: func(d deps) {
				processing := order
				processing.Status = entities.OrderStatusProcessing
				d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").Return(processing, nil)
				d.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.OrderStatusShipped, "TRK-42").Return(nil)
				d.orders.EXPECT().HasTransitionTo(mock.Anything, "order-1",
					entities.OrderStatusCancelled, entities.OrderStatusRefunded, entities.OrderStatusReturned).
					Return(false, nil)
				d.orders.EXPECT().InsertHistory(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, h entities.OrderHistory) (entities.OrderHistory, error) {
						assert.Equal(t, "TRK-42", h.TrackingNumber)
						return h, nil
					})
				d.cache.EXPECT().Delete("order-1").Return()
				d.notifier.EXPECT().OrderStatusChanged(mock.Anything, mock.Anything).Return()
			},
			check: func(t *testing.T, res service.TransitionResult) {
				assert.Equal(t, "TRK-42", res.Order.TrackingNumber)
			},
		},
		{
			name:  "order not found",
			input: service.TransitionInput{To: entities.OrderStatusPaid},
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := deps{
				orders:   mocks.NewMockOrderRepo(t),
				ledger:   mocks.NewMockLedger(t),
				cache:    mocks.NewMockCache(t),
				notifier: mocks.NewMockNotifier(t),
			}
			tx := txMocks.NewMockManager(t)
			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				})
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(d)

			svc := service.NewStatusService(logger, tx, d.orders, d.ledger, d.cache, d.notifier)

			res, err := svc.Transition(context.Background(), "order-1", tc.input)

			if tc.wantErr != nil {
				if want, isInvalid := tc.wantErr.(entities.InvalidTransitionError); isInvalid {
					var got entities.InvalidTransitionError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, want, got)
				} else {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, res)
			}
		})
	}
}
