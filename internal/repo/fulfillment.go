package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/lib/pq"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// fulfillmentRepo хранит возвраты и отправления — тонкие сущности поверх
// заказа и склада
type fulfillmentRepo struct {
	base
}

func NewFulfillmentRepo(db *sqlx.DB) *fulfillmentRepo {
	return &fulfillmentRepo{base: newBase(db)}
}

func (r *fulfillmentRepo) InsertReturn(ctx context.Context, req entities.ReturnRequest) (entities.ReturnRequest, error) {
	req.ID = uuid.NewString()
	req.CreatedAt = time.Now()

	query, args := r.qb.Insert("return_requests").
		Columns("id", "order_item_id", "quantity", "reason", "status", "requested_by", "created_at").
		Values(req.ID, req.OrderItemID, req.Quantity, nullString(req.Reason), string(req.Status), req.RequestedBy, req.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.ReturnRequest{}, fmt.Errorf("failed to insert return request: %w", err)
	}
	return req, nil
}

func (r *fulfillmentRepo) GetReturnByID(ctx context.Context, returnID string) (entities.ReturnRequest, error) {
	query, args := r.qb.Select("id", "order_item_id", "quantity", "reason", "status", "requested_by", "created_at").
		From("return_requests").
		Where(sq.Eq{"id": returnID}).
		MustSql()

	var ret ReturnRequest
	err := r.getContext(ctx, &ret, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ReturnRequest{}, entities.ErrReturnNotFound
	}
	if err != nil {
		return entities.ReturnRequest{}, fmt.Errorf("failed to get return request: %w", err)
	}
	return ReturnToEntity(ret), nil
}

func (r *fulfillmentRepo) UpdateReturnStatus(ctx context.Context, returnID string, status entities.ReturnStatus) error {
	query, args := r.qb.Update("return_requests").
		Set("status", string(status)).
		Where(sq.Eq{"id": returnID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update return request: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrReturnNotFound
	}
	return nil
}

// SumReturnedQty — сколько штук позиции уже запрошено к возврату.
// Без фильтра считаются все заявки кроме отклоненных
func (r *fulfillmentRepo) SumReturnedQty(ctx context.Context, orderItemID string, statuses ...entities.ReturnStatus) (int, error) {
	q := r.qb.Select("COALESCE(SUM(quantity), 0)").
		From("return_requests").
		Where(sq.Eq{"order_item_id": orderItemID})

	if len(statuses) > 0 {
		vals := make([]string, 0, len(statuses))
		for _, s := range statuses {
			vals = append(vals, string(s))
		}
		q = q.Where(sq.Eq{"status": vals})
	} else {
		q = q.Where(sq.NotEq{"status": string(entities.ReturnStatusRejected)})
	}

	query, args := q.MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum returned qty: %w", err)
	}
	return total, nil
}

func (r *fulfillmentRepo) InsertShipment(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()

	query, args := r.qb.Insert("shipments").
		Columns("id", "order_id", "carrier", "tracking_code", "status", "created_at").
		Values(s.ID, s.OrderID, nullString(s.Carrier), nullString(s.TrackingCode), string(s.Status), s.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		// у заказа может быть только одно отправление
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return entities.Shipment{}, entities.ErrShipmentExists
		}
		return entities.Shipment{}, fmt.Errorf("failed to insert shipment: %w", err)
	}
	return s, nil
}

func (r *fulfillmentRepo) GetShipmentByID(ctx context.Context, shipmentID string) (entities.Shipment, error) {
	query, args := r.qb.Select("id", "order_id", "carrier", "tracking_code", "status", "shipped_at", "delivered_at", "created_at").
		From("shipments").
		Where(sq.Eq{"id": shipmentID}).
		MustSql()

	var shipment Shipment
	err := r.getContext(ctx, &shipment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get shipment: %w", err)
	}
	return ShipmentToEntity(shipment), nil
}

func (r *fulfillmentRepo) UpdateShipment(ctx context.Context, shipmentID string, upd entities.ShipmentUpdate) error {
	q := r.qb.Update("shipments").
		Set("status", string(upd.Status)).
		Where(sq.Eq{"id": shipmentID})

	if !upd.ShippedAt.IsZero() {
		q = q.Set("shipped_at", upd.ShippedAt)
	}
	if !upd.DeliveredAt.IsZero() {
		q = q.Set("delivered_at", upd.DeliveredAt)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update shipment: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrShipmentNotFound
	}
	return nil
}
