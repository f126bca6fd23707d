package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrderByID(t *testing.T) {
	order := entities.Order{
		ID:          "order-1",
		OrderNumber: "ORD-20260801-12345",
		BuyerID:     "buyer-1",
		Status:      entities.OrderStatusPaid,
	}

	testCases := []struct {
		name         string
		mockBehavior func(orders *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name: "cache hit skips the database",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				data, err := order.Marshal()
				require.NoError(t, err)
				cache.EXPECT().Get("order-1").Return(data, true)
			},
		},
		{
			name: "cache miss reads and caches",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false)
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil)
				cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
		},
		{
			name: "corrupt cache entry falls back to the database",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return([]byte("garbage"), true)
				cache.EXPECT().Delete("order-1").Return()
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil)
				cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
		},
		{
			name: "transient failure is retried",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false)
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("connection reset")).Once()
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Once()
				cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
		},
		{
			name: "not found is not retried",
			mockBehavior: func(orders *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("order-1").Return(nil, false)
				orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(orders, cache)

			svc := service.NewOrderService(logger, orders, cache)

			got, err := svc.GetOrderByID(context.Background(), "order-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.ID)
			assert.Equal(t, order.Status, got.Status)
		})
	}
}

func TestOrderService_ListHistory(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		cache.EXPECT().Get("order-missing").Return(nil, false)
		orders.EXPECT().GetOrderByID(mock.Anything, "order-missing").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		svc := service.NewOrderService(logger, orders, cache)

		_, err := svc.ListHistory(context.Background(), "order-missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("OK", func(t *testing.T) {
		orders := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		order := entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}
		data, err := order.Marshal()
		require.NoError(t, err)

		cache.EXPECT().Get("order-1").Return(data, true)
		orders.EXPECT().ListHistory(mock.Anything, "order-1").
			Return([]entities.OrderHistory{{ID: "hist-1", OrderID: "order-1"}}, nil)

		svc := service.NewOrderService(logger, orders, cache)

		history, err := svc.ListHistory(context.Background(), "order-1")
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})
}
