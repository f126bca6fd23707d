package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
)

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type TransitionInput struct {
	To             entities.OrderStatus
	ActorID        string
	Notes          string
	TrackingNumber string
}

type TransitionResult struct {
	Order   entities.Order
	History entities.OrderHistory
	// NoOp выставляется когда заказ уже в целевом статусе
	NoOp bool
}

type statusService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	ledger    Ledger
	cache     Cache
	notifier  Notifier
}

func NewStatusService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	ledger Ledger,
	cache Cache,
	notifier Notifier,
) *statusService {
	return &statusService{
		logger:    logger.With(slog.String("service", "status")),
		txManager: txManager,
		orders:    orders,
		ledger:    ledger,
		cache:     cache,
		notifier:  notifier,
	}
}

// Transition переводит заказ по графу статусов. Повторный перевод в текущий
// статус успешен и ничего не меняет. Переход в CANCELLED или REFUNDED
// возвращает товар на склад, но не больше одного раза за жизнь заказа
func (s *statusService) Transition(ctx context.Context, orderID string, in TransitionInput) (TransitionResult, error) {
	var result TransitionResult

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}

		if order.Status == in.To {
			result = TransitionResult{Order: order, NoOp: true}
			return nil
		}
		if !order.Status.CanTransitionTo(in.To) {
			return entities.InvalidTransitionError{From: order.Status, To: in.To}
		}

		if err := s.orders.UpdateStatus(ctx, orderID, in.To, in.TrackingNumber); err != nil {
			return err
		}

		// до записи текущей строки: был ли уже возврат на склад.
		// Приход в RETURNED означает что позиции вернул процесс возвратов
		restocked, err := s.orders.HasTransitionTo(ctx, orderID,
			entities.OrderStatusCancelled, entities.OrderStatusRefunded, entities.OrderStatusReturned)
		if err != nil {
			return err
		}

		history, err := s.orders.InsertHistory(ctx, entities.OrderHistory{
			OrderID:        orderID,
			FromStatus:     order.Status,
			ToStatus:       in.To,
			ActorID:        in.ActorID,
			Notes:          in.Notes,
			TrackingNumber: in.TrackingNumber,
		})
		if err != nil {
			return err
		}

		if reason, ok := in.To.RestockReason(); ok && !restocked {
			for _, item := range order.Items {
				notes := fmt.Sprintf("restock for order %s", order.OrderNumber)
				if err := s.ledger.Increment(ctx, item.SKUID, item.Quantity, orderID, reason, notes); err != nil {
					return err
				}
			}
		}

		order.Status = in.To
		if in.TrackingNumber != "" {
			order.TrackingNumber = in.TrackingNumber
		}
		result = TransitionResult{Order: order, History: history}

		// побочные эффекты только после фиксации внешней транзакции:
		// откат не должен оставить событие в кафке и дырку в кеше
		changed := result
		trm.OnCommit(ctx, func() {
			s.cache.Delete(orderID)
			s.logger.InfoContext(ctx, "order status changed",
				slog.String("order_id", orderID),
				slog.String("from", string(changed.History.FromStatus)),
				slog.String("to", string(changed.History.ToStatus)),
			)
			s.notifier.OrderStatusChanged(changed.Order, changed.History)
		})
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}
	return result, nil
}
