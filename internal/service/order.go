package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
)

type orderService struct {
	logger *slog.Logger
	orders OrderRepo
	cache  Cache
}

func NewOrderService(logger *slog.Logger, orders OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		orders: orders,
		cache:  cache,
	}
}

// GetOrderByID читает заказ сначала из кеша, затем из базы с повторами.
// Порченая запись кеша считается промахом
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		s.cache.Delete(orderID)
	}

	var order entities.Order
	err := utils.Retry(utils.RetryConfig{MaxAttempts: 3}, func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderID, data)
	} else {
		s.logger.WarnContext(ctx, "failed to cache order", slog.String("order_id", orderID))
	}
	return order, nil
}

func (s *orderService) ListOrdersByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error) {
	return s.orders.ListOrdersByBuyer(ctx, buyerID)
}

func (s *orderService) ListHistory(ctx context.Context, orderID string) ([]entities.OrderHistory, error) {
	if _, err := s.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orders.ListHistory(ctx, orderID)
}
