package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
)

type FulfillmentRepo interface {
	InsertReturn(ctx context.Context, req entities.ReturnRequest) (entities.ReturnRequest, error)
	GetReturnByID(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	UpdateReturnStatus(ctx context.Context, returnID string, status entities.ReturnStatus) error
	SumReturnedQty(ctx context.Context, orderItemID string, statuses ...entities.ReturnStatus) (int, error)
	InsertShipment(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	GetShipmentByID(ctx context.Context, shipmentID string) (entities.Shipment, error)
	UpdateShipment(ctx context.Context, shipmentID string, upd entities.ShipmentUpdate) error
}

type returnsService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	fulfillment FulfillmentRepo
	orders      OrderRepo
	ledger      Ledger
	statuses    OrderTransitioner
}

func NewReturnsService(
	logger *slog.Logger,
	txManager trm.Manager,
	fulfillment FulfillmentRepo,
	orders OrderRepo,
	ledger Ledger,
	statuses OrderTransitioner,
) *returnsService {
	return &returnsService{
		logger:      logger.With(slog.String("service", "returns")),
		txManager:   txManager,
		fulfillment: fulfillment,
		orders:      orders,
		ledger:      ledger,
		statuses:    statuses,
	}
}

// RequestReturn создает заявку на возврат позиции заказа.
// Вернуть можно не больше, чем куплено минус уже запрошено
func (s *returnsService) RequestReturn(ctx context.Context, buyerID, orderItemID string, qty int, reason string) (entities.ReturnRequest, error) {
	if qty <= 0 {
		return entities.ReturnRequest{}, entities.ErrInvalidAmount
	}

	item, err := s.orders.GetOrderItemByID(ctx, orderItemID)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	order, err := s.orders.GetOrderByID(ctx, item.OrderID)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	if order.BuyerID != buyerID {
		return entities.ReturnRequest{}, entities.ErrForbidden
	}
	if order.Status != entities.OrderStatusShipped && order.Status != entities.OrderStatusDelivered {
		return entities.ReturnRequest{}, entities.InvalidTransitionError{From: order.Status, To: entities.OrderStatusReturned}
	}

	requested, err := s.fulfillment.SumReturnedQty(ctx, orderItemID)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	if qty > item.Quantity-requested {
		return entities.ReturnRequest{}, fmt.Errorf("only %d of %d left to return: %w",
			item.Quantity-requested, item.Quantity, entities.ErrInvalidAmount)
	}

	req, err := s.fulfillment.InsertReturn(ctx, entities.ReturnRequest{
		OrderItemID: orderItemID,
		Quantity:    qty,
		Reason:      reason,
		Status:      entities.ReturnStatusRequested,
		RequestedBy: buyerID,
	})
	if err != nil {
		return entities.ReturnRequest{}, err
	}

	s.logger.InfoContext(ctx, "return requested",
		slog.String("return_id", req.ID),
		slog.String("order_id", order.ID),
		slog.Int("qty", qty),
	)
	return req, nil
}

func (s *returnsService) ApproveReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error) {
	return s.moderate(ctx, returnID, entities.ReturnStatusApproved)
}

func (s *returnsService) RejectReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error) {
	return s.moderate(ctx, returnID, entities.ReturnStatusRejected)
}

func (s *returnsService) moderate(ctx context.Context, returnID string, to entities.ReturnStatus) (entities.ReturnRequest, error) {
	req, err := s.fulfillment.GetReturnByID(ctx, returnID)
	if err != nil {
		return entities.ReturnRequest{}, err
	}
	if req.Status != entities.ReturnStatusRequested {
		return entities.ReturnRequest{}, entities.ErrConflict
	}
	if err := s.fulfillment.UpdateReturnStatus(ctx, returnID, to); err != nil {
		return entities.ReturnRequest{}, err
	}
	req.Status = to
	return req, nil
}

// CompleteReturn фиксирует получение товара: возвращает количество на склад
// и, когда все позиции заказа возвращены целиком, переводит заказ в RETURNED
func (s *returnsService) CompleteReturn(ctx context.Context, returnID, actorID string) (entities.ReturnRequest, error) {
	var req entities.ReturnRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.fulfillment.GetReturnByID(ctx, returnID)
		if err != nil {
			return err
		}
		if req.Status != entities.ReturnStatusApproved {
			return entities.ErrConflict
		}
		if err := s.fulfillment.UpdateReturnStatus(ctx, returnID, entities.ReturnStatusCompleted); err != nil {
			return err
		}
		req.Status = entities.ReturnStatusCompleted

		item, err := s.orders.GetOrderItemByID(ctx, req.OrderItemID)
		if err != nil {
			return err
		}
		order, err := s.orders.GetOrderByID(ctx, item.OrderID)
		if err != nil {
			return err
		}

		notes := fmt.Sprintf("return %s completed", returnID)
		if err := s.ledger.Increment(ctx, item.SKUID, req.Quantity, order.ID, entities.InventoryTxReturn, notes); err != nil {
			return err
		}

		done, err := s.fullyReturned(ctx, order)
		if err != nil {
			return err
		}
		if done && order.Status.CanTransitionTo(entities.OrderStatusReturned) {
			_, err = s.statuses.Transition(ctx, order.ID, TransitionInput{
				To:      entities.OrderStatusReturned,
				ActorID: actorID,
				Notes:   "all items returned",
			})
			return err
		}
		return nil
	})
	if err != nil {
		return entities.ReturnRequest{}, err
	}

	s.logger.InfoContext(ctx, "return completed", slog.String("return_id", returnID))
	return req, nil
}

func (s *returnsService) fullyReturned(ctx context.Context, order entities.Order) (bool, error) {
	for _, item := range order.Items {
		returned, err := s.fulfillment.SumReturnedQty(ctx, item.ID, entities.ReturnStatusCompleted)
		if err != nil {
			return false, err
		}
		if returned < item.Quantity {
			return false, nil
		}
	}
	return true, nil
}

func (s *returnsService) GetReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error) {
	return s.fulfillment.GetReturnByID(ctx, returnID)
}
