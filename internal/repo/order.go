package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/lib/pq"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const pgUniqueViolation = "23505"

type orderRepo struct {
	base
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{base: newBase(db)}
}

func (r *orderRepo) InsertOrder(ctx context.Context, o entities.Order) error {
	shippingAddr, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}
	billingAddr, err := json.Marshal(o.BillingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal billing address: %w", err)
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"id", "order_number", "buyer_id", "store_id", "status",
			"subtotal", "shipping_cost", "tax_amount", "total", "currency",
			"shipping_method", "shipping_address", "billing_address",
			"notes", "created_at",
		).
		Values(
			o.ID, o.OrderNumber, o.BuyerID, o.StoreID, string(o.Status),
			o.Subtotal, o.ShippingCost, o.TaxAmount, o.Total, o.Currency,
			o.ShippingMethod, shippingAddr, billingAddr,
			nullString(o.Notes), o.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		// гонка по номеру заказа — ретраябельный конфликт, не фатал
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return fmt.Errorf("order number %s taken: %w", o.OrderNumber, entities.ErrConflict)
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *orderRepo) InsertItems(ctx context.Context, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "sku_id", "product_id", "name", "quantity", "unit_price", "total")

	for _, it := range items {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		q = q.Values(id, it.OrderID, it.SKUID, it.ProductID, it.Name, it.Quantity, it.UnitPrice, it.Total)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_number", "buyer_id", "store_id", "status",
		"subtotal", "shipping_cost", "tax_amount", "total", "currency",
		"shipping_method", "shipping_address", "billing_address",
		"tracking_number", "notes", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items), nil
}

// GetOrderByIDForUpdate блокирует строку заказа на время транзакции,
// чтобы конкурентные переходы статуса сериализовались
func (r *orderRepo) GetOrderByIDForUpdate(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_number", "buyer_id", "store_id", "status",
		"subtotal", "shipping_cost", "tax_amount", "total", "currency",
		"shipping_method", "shipping_address", "billing_address",
		"tracking_number", "notes", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items), nil
}

func (r *orderRepo) ListOrdersByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_number", "buyer_id", "store_id", "status",
		"subtotal", "shipping_cost", "tax_amount", "total", "currency",
		"shipping_method", "shipping_address", "billing_address",
		"tracking_number", "notes", "created_at").
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		items, err := r.orderItems(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, OrderToEntity(order, items))
	}
	return result, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, trackingNumber string) error {
	q := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID})

	if trackingNumber != "" {
		q = q.Set("tracking_number", trackingNumber)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) InsertHistory(ctx context.Context, h entities.OrderHistory) (entities.OrderHistory, error) {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()

	query, args := r.qb.Insert("order_history").
		Columns("id", "order_id", "from_status", "to_status", "actor_id", "notes", "tracking_number", "created_at").
		Values(
			h.ID, h.OrderID, string(h.FromStatus), string(h.ToStatus),
			nullString(h.ActorID), nullString(h.Notes), nullString(h.TrackingNumber), h.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.OrderHistory{}, fmt.Errorf("failed to insert order history: %w", err)
	}
	return h, nil
}

// HasTransitionTo проверяет по журналу, достигал ли заказ одного из статусов.
// Защита от повторного пополнения склада при ретраях
func (r *orderRepo) HasTransitionTo(ctx context.Context, orderID string, statuses ...entities.OrderStatus) (bool, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query, args := r.qb.Select("COUNT(*)").
		From("order_history").
		Where(sq.Eq{"order_id": orderID, "to_status": values}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check order history: %w", err)
	}
	return count > 0, nil
}

func (r *orderRepo) ListHistory(ctx context.Context, orderID string) ([]entities.OrderHistory, error) {
	query, args := r.qb.Select("id", "order_id", "from_status", "to_status", "actor_id", "notes", "tracking_number", "created_at").
		From("order_history").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		MustSql()

	var rows []OrderHistory
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order history: %w", err)
	}

	result := make([]entities.OrderHistory, 0, len(rows))
	for _, row := range rows {
		result = append(result, HistoryToEntity(row))
	}
	return result, nil
}

func (r *orderRepo) GetOrderItemByID(ctx context.Context, itemID string) (entities.OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "sku_id", "product_id", "name", "quantity", "unit_price", "total").
		From("order_items").
		Where(sq.Eq{"id": itemID}).
		MustSql()

	var item OrderItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderItem{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.OrderItem{}, fmt.Errorf("failed to get order item: %w", err)
	}
	return OrderItemToEntity(item), nil
}

func (r *orderRepo) orderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	query, args := r.qb.Select("id", "order_id", "sku_id", "product_id", "name", "quantity", "unit_price", "total").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}
