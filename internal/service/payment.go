package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
	"github.com/shopspring/decimal"
)

// OrderTransitioner — переходы заказа, которые инициирует платежный цикл
type OrderTransitioner interface {
	Transition(ctx context.Context, orderID string, in TransitionInput) (TransitionResult, error)
}

type RefundInput struct {
	// Zero Amount означает возврат всего остатка
	Amount         decimal.Decimal
	Reason         string
	IdempotencyKey string
	ProcessedBy    string
}

type paymentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	payments  PaymentRepo
	orders    OrderRepo
	statuses  OrderTransitioner
	notifier  Notifier
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	payments PaymentRepo,
	orders OrderRepo,
	statuses OrderTransitioner,
	notifier Notifier,
) *paymentService {
	return &paymentService{
		logger:    logger.With(slog.String("service", "payment")),
		txManager: txManager,
		payments:  payments,
		orders:    orders,
		statuses:  statuses,
		notifier:  notifier,
	}
}

// Authorize фиксирует успешную авторизацию у провайдера.
// Повторная авторизация уже авторизованного платежа безвредна
func (s *paymentService) Authorize(ctx context.Context, paymentID, providerRef string) (entities.Payment, error) {
	var payment entities.Payment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.payments.GetPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == entities.PaymentStatusAuthorized {
			return nil
		}
		if !payment.Status.CanTransitionTo(entities.PaymentStatusAuthorized) {
			return entities.InvalidPaymentTransitionError{From: payment.Status, To: entities.PaymentStatusAuthorized}
		}

		now := time.Now()
		upd := entities.PaymentUpdate{
			Status:       entities.PaymentStatusAuthorized,
			ProviderRef:  providerRef,
			AuthorizedAt: now,
		}
		if err := s.payments.UpdatePayment(ctx, paymentID, upd); err != nil {
			return err
		}
		payment.Status = upd.Status
		payment.ProviderRef = providerRef
		payment.AuthorizedAt = now
		return nil
	})
	if err != nil {
		return entities.Payment{}, err
	}

	s.notifier.PaymentUpdated(payment)
	return payment, nil
}

// Capture списывает авторизованные средства и переводит заказ в PAID.
// Повторный capture по уже оплаченному платежу — no-op
func (s *paymentService) Capture(ctx context.Context, paymentID string) (entities.Payment, error) {
	var payment entities.Payment
	var captured bool

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.payments.GetPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == entities.PaymentStatusPaid {
			return nil
		}
		if !payment.Status.CanTransitionTo(entities.PaymentStatusPaid) {
			return entities.InvalidPaymentTransitionError{From: payment.Status, To: entities.PaymentStatusPaid}
		}

		now := time.Now()
		upd := entities.PaymentUpdate{Status: entities.PaymentStatusPaid, PaidAt: now}
		if err := s.payments.UpdatePayment(ctx, paymentID, upd); err != nil {
			return err
		}
		payment.Status = upd.Status
		payment.PaidAt = now
		captured = true

		order, err := s.orders.GetOrderByID(ctx, payment.OrderID)
		if err != nil {
			return err
		}
		// заказ мог уйти дальше по жизненному циклу, тогда оплату
		// просто фиксируем на платеже
		if order.Status != entities.OrderStatusPending {
			return nil
		}
		_, err = s.statuses.Transition(ctx, payment.OrderID, TransitionInput{
			To:      entities.OrderStatusPaid,
			ActorID: "payment-service",
			Notes:   fmt.Sprintf("payment %s captured", paymentID),
		})
		return err
	})
	if err != nil {
		return entities.Payment{}, err
	}

	if captured {
		s.logger.InfoContext(ctx, "payment captured",
			slog.String("payment_id", paymentID), slog.String("order_id", payment.OrderID))
		s.notifier.PaymentUpdated(payment)
	}
	return payment, nil
}

// Fail помечает платеж неуспешным с кодом отказа провайдера
func (s *paymentService) Fail(ctx context.Context, paymentID, failureCode string) (entities.Payment, error) {
	var payment entities.Payment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.payments.GetPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status == entities.PaymentStatusFailed {
			return nil
		}
		if !payment.Status.CanTransitionTo(entities.PaymentStatusFailed) {
			return entities.InvalidPaymentTransitionError{From: payment.Status, To: entities.PaymentStatusFailed}
		}

		upd := entities.PaymentUpdate{Status: entities.PaymentStatusFailed, FailureCode: failureCode}
		if err := s.payments.UpdatePayment(ctx, paymentID, upd); err != nil {
			return err
		}
		payment.Status = upd.Status
		payment.FailureCode = failureCode
		return nil
	})
	if err != nil {
		return entities.Payment{}, err
	}

	s.logger.WarnContext(ctx, "payment failed",
		slog.String("payment_id", paymentID), slog.String("failure_code", failureCode))
	s.notifier.PaymentUpdated(payment)
	return payment, nil
}

// Refund возвращает средства покупателю. Ключ идемпотентности защищает
// от двойного возврата при повторе запроса: та же заявка возвращается
// как есть. Полный возврат переводит заказ в REFUNDED
func (s *paymentService) Refund(ctx context.Context, paymentID string, in RefundInput) (entities.Refund, error) {
	if in.IdempotencyKey != "" {
		existing, err := s.payments.GetRefundByKey(ctx, in.IdempotencyKey)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, entities.ErrRefundNotFound) {
			return entities.Refund{}, err
		}
	}

	var refund entities.Refund
	var payment entities.Payment

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		payment, err = s.payments.GetPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if !payment.Status.Refundable() {
			return entities.InvalidPaymentTransitionError{From: payment.Status, To: entities.PaymentStatusRefunded}
		}

		refunded, err := s.payments.SumRefunds(ctx, paymentID)
		if err != nil {
			return err
		}
		remaining := payment.Amount.Sub(refunded)

		amount := in.Amount
		if amount.IsZero() {
			amount = remaining
		}
		if amount.IsNegative() || amount.GreaterThan(remaining) || remaining.IsZero() {
			return fmt.Errorf("refund of %s exceeds remaining %s: %w",
				amount.StringFixed(2), remaining.StringFixed(2), entities.ErrInvalidAmount)
		}

		refund, err = s.payments.InsertRefund(ctx, entities.Refund{
			PaymentID:      paymentID,
			Amount:         amount,
			Reason:         in.Reason,
			Status:         entities.RefundStatusCompleted,
			IdempotencyKey: in.IdempotencyKey,
			ProcessedBy:    in.ProcessedBy,
			ProcessedAt:    time.Now(),
		})
		if err != nil {
			return err
		}

		status := entities.PaymentStatusPartiallyRefunded
		full := amount.Equal(remaining)
		if full {
			status = entities.PaymentStatusRefunded
		}
		if err := s.payments.UpdatePayment(ctx, paymentID, entities.PaymentUpdate{Status: status}); err != nil {
			return err
		}
		payment.Status = status

		if full {
			_, err = s.statuses.Transition(ctx, payment.OrderID, TransitionInput{
				To:      entities.OrderStatusRefunded,
				ActorID: in.ProcessedBy,
				Notes:   fmt.Sprintf("full refund %s", refund.ID),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Refund{}, err
	}

	s.logger.InfoContext(ctx, "refund processed",
		slog.String("payment_id", paymentID),
		slog.String("refund_id", refund.ID),
		slog.String("amount", refund.Amount.String()),
	)
	s.notifier.PaymentUpdated(payment)
	return refund, nil
}
