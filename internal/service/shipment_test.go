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

type shipmentDeps struct {
	fulfillment *mocks.MockFulfillmentRepo
	orders      *mocks.MockOrderRepo
	statuses    *mocks.MockOrderTransitioner
}

func newShipmentService(t *testing.T) (shipmentDeps, interface {
	CreateShipment(ctx context.Context, orderID, carrier, trackingCode, actorID string) (entities.Shipment, error)
	MarkShipped(ctx context.Context, shipmentID, actorID string) (entities.Shipment, error)
	MarkDelivered(ctx context.Context, shipmentID, actorID string) (entities.Shipment, error)
}) {
	d := shipmentDeps{
		fulfillment: mocks.NewMockFulfillmentRepo(t),
		orders:      mocks.NewMockOrderRepo(t),
		statuses:    mocks.NewMockOrderTransitioner(t),
	}
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return d, service.NewShipmentService(logger, tx, d.fulfillment, d.orders, d.statuses)
}

func TestShipmentService_CreateShipment(t *testing.T) {
	t.Run("paid order moves to processing", func(t *testing.T) {
		d, svc := newShipmentService(t)

		d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPaid}, nil)
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusProcessing, in.To)
				return service.TransitionResult{}, nil
			})
		d.fulfillment.EXPECT().InsertShipment(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, sh entities.Shipment) (entities.Shipment, error) {
				assert.Equal(t, entities.ShipmentStatusPending, sh.Status)
				assert.Equal(t, "cdek", sh.Carrier)
				sh.ID = "ship-1"
				return sh, nil
			})

		shipment, err := svc.CreateShipment(context.Background(), "order-1", "cdek", "TRK-42", "staff-1")
		require.NoError(t, err)
		assert.Equal(t, "ship-1", shipment.ID)
	})

	t.Run("processing order needs no transition", func(t *testing.T) {
		d, svc := newShipmentService(t)

		d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusProcessing}, nil)
		d.fulfillment.EXPECT().InsertShipment(mock.Anything, mock.Anything).
			Return(entities.Shipment{ID: "ship-1"}, nil)

		_, err := svc.CreateShipment(context.Background(), "order-1", "cdek", "TRK-42", "staff-1")
		assert.NoError(t, err)
	})

	t.Run("cancelled order cannot be shipped", func(t *testing.T) {
		d, svc := newShipmentService(t)

		d.orders.EXPECT().GetOrderByIDForUpdate(mock.Anything, "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusCancelled}, nil)

		_, err := svc.CreateShipment(context.Background(), "order-1", "cdek", "TRK-42", "staff-1")

		var transErr entities.InvalidTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, entities.OrderStatusCancelled, transErr.From)
	})
}

func TestShipmentService_MarkShipped(t *testing.T) {
	pending := entities.Shipment{
		ID:           "ship-1",
		OrderID:      "order-1",
		Carrier:      "cdek",
		TrackingCode: "TRK-42",
		Status:       entities.ShipmentStatusPending,
	}

	t.Run("moves the order to shipped with the tracking code", func(t *testing.T) {
		d, svc := newShipmentService(t)

		d.fulfillment.EXPECT().GetShipmentByID(mock.Anything, "ship-1").Return(pending, nil)
		d.fulfillment.EXPECT().UpdateShipment(mock.Anything, "ship-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, upd entities.ShipmentUpdate) error {
				assert.Equal(t, entities.ShipmentStatusShipped, upd.Status)
				assert.False(t, upd.ShippedAt.IsZero())
				return nil
			})
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusShipped, in.To)
				assert.Equal(t, "TRK-42", in.TrackingNumber)
				return service.TransitionResult{}, nil
			})

		shipment, err := svc.MarkShipped(context.Background(), "ship-1", "staff-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ShipmentStatusShipped, shipment.Status)
	})

	t.Run("repeated mark conflicts", func(t *testing.T) {
		d, svc := newShipmentService(t)

		shipped := pending
		shipped.Status = entities.ShipmentStatusShipped
		d.fulfillment.EXPECT().GetShipmentByID(mock.Anything, "ship-1").Return(shipped, nil)

		_, err := svc.MarkShipped(context.Background(), "ship-1", "staff-1")
		assert.ErrorIs(t, err, entities.ErrConflict)
	})
}

func TestShipmentService_MarkDelivered(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		d, svc := newShipmentService(t)

		d.fulfillment.EXPECT().GetShipmentByID(mock.Anything, "ship-1").
			Return(entities.Shipment{ID: "ship-1", OrderID: "order-1", Status: entities.ShipmentStatusShipped}, nil)
		d.fulfillment.EXPECT().UpdateShipment(mock.Anything, "ship-1", mock.Anything).Return(nil)
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusDelivered, in.To)
				return service.TransitionResult{}, nil
			})

		shipment, err := svc.MarkDelivered(context.Background(), "ship-1", "staff-1")
		require.NoError(t, err)
		assert.Equal(t, entities.ShipmentStatusDelivered, shipment.Status)
	})

	t.Run("not shipped yet", func(t *testing.T) {
		d, svc := newShipmentService(t)

		d.fulfillment.EXPECT().GetShipmentByID(mock.Anything, "ship-1").
			Return(entities.Shipment{ID: "ship-1", Status: entities.ShipmentStatusPending}, nil)

		_, err := svc.MarkDelivered(context.Background(), "ship-1", "staff-1")
		assert.ErrorIs(t, err, entities.ErrConflict)
	})
}
