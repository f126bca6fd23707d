package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
)

type shipmentService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	fulfillment FulfillmentRepo
	orders      OrderRepo
	statuses    OrderTransitioner
}

func NewShipmentService(
	logger *slog.Logger,
	txManager trm.Manager,
	fulfillment FulfillmentRepo,
	orders OrderRepo,
	statuses OrderTransitioner,
) *shipmentService {
	return &shipmentService{
		logger:      logger.With(slog.String("service", "shipment")),
		txManager:   txManager,
		fulfillment: fulfillment,
		orders:      orders,
		statuses:    statuses,
	}
}

// CreateShipment заводит отправление для заказа, не больше одного на заказ.
// Заказ в PENDING или PAID при этом переходит в PROCESSING
func (s *shipmentService) CreateShipment(ctx context.Context, orderID, carrier, trackingCode, actorID string) (entities.Shipment, error) {
	var shipment entities.Shipment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		switch order.Status {
		case entities.OrderStatusPending, entities.OrderStatusPaid:
			_, err = s.statuses.Transition(ctx, orderID, TransitionInput{
				To:      entities.OrderStatusProcessing,
				ActorID: actorID,
				Notes:   "shipment created",
			})
			if err != nil {
				return err
			}
		case entities.OrderStatusProcessing:
		default:
			return entities.InvalidTransitionError{From: order.Status, To: entities.OrderStatusProcessing}
		}

		shipment, err = s.fulfillment.InsertShipment(ctx, entities.Shipment{
			OrderID:      orderID,
			Carrier:      carrier,
			TrackingCode: trackingCode,
			Status:       entities.ShipmentStatusPending,
		})
		return err
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	s.logger.InfoContext(ctx, "shipment created",
		slog.String("shipment_id", shipment.ID), slog.String("order_id", orderID))
	return shipment, nil
}

// MarkShipped отмечает передачу перевозчику и двигает заказ в SHIPPED
// с трек-номером
func (s *shipmentService) MarkShipped(ctx context.Context, shipmentID, actorID string) (entities.Shipment, error) {
	var shipment entities.Shipment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.fulfillment.GetShipmentByID(ctx, shipmentID)
		if err != nil {
			return err
		}
		if shipment.Status != entities.ShipmentStatusPending {
			return entities.ErrConflict
		}

		now := time.Now()
		upd := entities.ShipmentUpdate{Status: entities.ShipmentStatusShipped, ShippedAt: now}
		if err := s.fulfillment.UpdateShipment(ctx, shipmentID, upd); err != nil {
			return err
		}
		shipment.Status = upd.Status
		shipment.ShippedAt = now

		_, err = s.statuses.Transition(ctx, shipment.OrderID, TransitionInput{
			To:             entities.OrderStatusShipped,
			ActorID:        actorID,
			Notes:          fmt.Sprintf("shipped via %s", shipment.Carrier),
			TrackingNumber: shipment.TrackingCode,
		})
		return err
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	return shipment, nil
}

// MarkDelivered отмечает вручение и двигает заказ в DELIVERED
func (s *shipmentService) MarkDelivered(ctx context.Context, shipmentID, actorID string) (entities.Shipment, error) {
	var shipment entities.Shipment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.fulfillment.GetShipmentByID(ctx, shipmentID)
		if err != nil {
			return err
		}
		if shipment.Status != entities.ShipmentStatusShipped {
			return entities.ErrConflict
		}

		now := time.Now()
		upd := entities.ShipmentUpdate{Status: entities.ShipmentStatusDelivered, DeliveredAt: now}
		if err := s.fulfillment.UpdateShipment(ctx, shipmentID, upd); err != nil {
			return err
		}
		shipment.Status = upd.Status
		shipment.DeliveredAt = now

		_, err = s.statuses.Transition(ctx, shipment.OrderID, TransitionInput{
			To:      entities.OrderStatusDelivered,
			ActorID: actorID,
		})
		return err
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	return shipment, nil
}

func (s *shipmentService) GetShipment(ctx context.Context, shipmentID string) (entities.Shipment, error) {
	return s.fulfillment.GetShipmentByID(ctx, shipmentID)
}
