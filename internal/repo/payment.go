package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type paymentRepo struct {
	base
}

func NewPaymentRepo(db *sqlx.DB) *paymentRepo {
	return &paymentRepo{base: newBase(db)}
}

func (r *paymentRepo) InsertPayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()

	query, args := r.qb.Insert("payments").
		Columns("id", "order_id", "provider", "provider_ref", "method", "status", "currency", "amount", "created_at").
		Values(
			p.ID, p.OrderID, p.Provider, nullString(p.ProviderRef), nullString(p.Method),
			string(p.Status), p.Currency, p.Amount, p.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Payment{}, fmt.Errorf("failed to insert payment: %w", err)
	}
	return p, nil
}

func (r *paymentRepo) GetPaymentByID(ctx context.Context, paymentID string) (entities.Payment, error) {
	query, args := r.qb.Select(
		"id", "order_id", "provider", "provider_ref", "method", "status",
		"currency", "amount", "authorized_at", "paid_at", "failure_code", "created_at").
		From("payments").
		Where(sq.Eq{"id": paymentID}).
		MustSql()

	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Payment{}, entities.ErrPaymentNotFound
	}
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return PaymentToEntity(payment), nil
}

// GetPaymentByIDForUpdate блокирует платеж: capture и refund под ретраями
// не должны пересекаться
func (r *paymentRepo) GetPaymentByIDForUpdate(ctx context.Context, paymentID string) (entities.Payment, error) {
	query, args := r.qb.Select(
		"id", "order_id", "provider", "provider_ref", "method", "status",
		"currency", "amount", "authorized_at", "paid_at", "failure_code", "created_at").
		From("payments").
		Where(sq.Eq{"id": paymentID}).
		Suffix("FOR UPDATE").
		MustSql()

	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Payment{}, entities.ErrPaymentNotFound
	}
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return PaymentToEntity(payment), nil
}

func (r *paymentRepo) GetActivePaymentByOrder(ctx context.Context, orderID string) (entities.Payment, error) {
	query, args := r.qb.Select(
		"id", "order_id", "provider", "provider_ref", "method", "status",
		"currency", "amount", "authorized_at", "paid_at", "failure_code", "created_at").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.NotEq{"status": string(entities.PaymentStatusFailed)}).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Payment{}, entities.ErrPaymentNotFound
	}
	if err != nil {
		return entities.Payment{}, fmt.Errorf("failed to get payment by order: %w", err)
	}
	return PaymentToEntity(payment), nil
}

func (r *paymentRepo) UpdatePayment(ctx context.Context, paymentID string, upd entities.PaymentUpdate) error {
	q := r.qb.Update("payments").
		Set("status", string(upd.Status)).
		Where(sq.Eq{"id": paymentID})

	if upd.ProviderRef != "" {
		q = q.Set("provider_ref", upd.ProviderRef)
	}
	if !upd.AuthorizedAt.IsZero() {
		q = q.Set("authorized_at", upd.AuthorizedAt)
	}
	if !upd.PaidAt.IsZero() {
		q = q.Set("paid_at", upd.PaidAt)
	}
	if upd.FailureCode != "" {
		q = q.Set("failure_code", upd.FailureCode)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrPaymentNotFound
	}
	return nil
}

func (r *paymentRepo) InsertRefund(ctx context.Context, refund entities.Refund) (entities.Refund, error) {
	refund.ID = uuid.NewString()

	query, args := r.qb.Insert("refunds").
		Columns("id", "payment_id", "amount", "reason", "status", "idempotency_key", "processed_by", "processed_at").
		Values(
			refund.ID, refund.PaymentID, refund.Amount, nullString(refund.Reason),
			string(refund.Status), nullString(refund.IdempotencyKey), nullString(refund.ProcessedBy), nullTime(refund.ProcessedAt),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Refund{}, fmt.Errorf("failed to insert refund: %w", err)
	}
	return refund, nil
}

// GetRefundByKey находит ранее обработанный возврат по ключу идемпотентности
func (r *paymentRepo) GetRefundByKey(ctx context.Context, idempotencyKey string) (entities.Refund, error) {
	query, args := r.qb.Select("id", "payment_id", "amount", "reason", "status", "idempotency_key", "processed_by", "processed_at").
		From("refunds").
		Where(sq.Eq{"idempotency_key": idempotencyKey}).
		MustSql()

	var refund Refund
	err := r.getContext(ctx, &refund, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Refund{}, entities.ErrRefundNotFound
	}
	if err != nil {
		return entities.Refund{}, fmt.Errorf("failed to get refund: %w", err)
	}
	return RefundToEntity(refund), nil
}

// SumRefunds возвращает сумму завершенных возвратов по платежу
func (r *paymentRepo) SumRefunds(ctx context.Context, paymentID string) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(SUM(amount), 0)").
		From("refunds").
		Where(sq.Eq{"payment_id": paymentID, "status": string(entities.RefundStatusCompleted)}).
		MustSql()

	var total decimal.Decimal
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum refunds: %w", err)
	}
	return total, nil
}
