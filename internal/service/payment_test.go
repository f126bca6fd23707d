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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentDeps struct {
	payments *mocks.MockPaymentRepo
	orders   *mocks.MockOrderRepo
	statuses *mocks.MockOrderTransitioner
	notifier *mocks.MockNotifier
}

func newPaymentService(t *testing.T) (paymentDeps, interface {
	Authorize(ctx context.Context, paymentID, providerRef string) (entities.Payment, error)
	Capture(ctx context.Context, paymentID string) (entities.Payment, error)
	Fail(ctx context.Context, paymentID, failureCode string) (entities.Payment, error)
	Refund(ctx context.Context, paymentID string, in service.RefundInput) (entities.Refund, error)
}) {
	d := paymentDeps{
		payments: mocks.NewMockPaymentRepo(t),
		orders:   mocks.NewMockOrderRepo(t),
		statuses: mocks.NewMockOrderTransitioner(t),
		notifier: mocks.NewMockNotifier(t),
	}
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return d, service.NewPaymentService(logger, tx, d.payments, d.orders, d.statuses, d.notifier)
}

func TestPaymentService_Authorize(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", OrderID: "order-1", Status: entities.PaymentStatusPending}, nil)
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, upd entities.PaymentUpdate) error {
				assert.Equal(t, entities.PaymentStatusAuthorized, upd.Status)
				assert.Equal(t, "ch_123", upd.ProviderRef)
				assert.False(t, upd.AuthorizedAt.IsZero())
				return nil
			})
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		payment, err := svc.Authorize(context.Background(), "pay-1", "ch_123")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusAuthorized, payment.Status)
		assert.Equal(t, "ch_123", payment.ProviderRef)
	})

	t.Run("already authorized is a no-op", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusAuthorized, ProviderRef: "ch_123"}, nil)
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		payment, err := svc.Authorize(context.Background(), "pay-1", "ch_other")
		require.NoError(t, err)
		assert.Equal(t, "ch_123", payment.ProviderRef)
	})

	t.Run("failed payment cannot be authorized", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusFailed}, nil)

		_, err := svc.Authorize(context.Background(), "pay-1", "ch_123")

		var transErr entities.InvalidPaymentTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, entities.PaymentStatusFailed, transErr.From)
	})
}

func TestPaymentService_Capture(t *testing.T) {
	t.Run("capture moves a pending order to paid", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", OrderID: "order-1", Status: entities.PaymentStatusAuthorized}, nil)
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).Return(nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusPending}, nil)
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusPaid, in.To)
				assert.Equal(t, "payment-service", in.ActorID)
				return service.TransitionResult{}, nil
			})
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		payment, err := svc.Capture(context.Background(), "pay-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, payment.Status)
		assert.False(t, payment.PaidAt.IsZero())
	})

	t.Run("order already past pending stays untouched", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", OrderID: "order-1", Status: entities.PaymentStatusAuthorized}, nil)
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).Return(nil)
		d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(entities.Order{ID: "order-1", Status: entities.OrderStatusProcessing}, nil)
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		_, err := svc.Capture(context.Background(), "pay-1")
		assert.NoError(t, err)
	})

	t.Run("repeated capture is a no-op", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid}, nil)

		payment, err := svc.Capture(context.Background(), "pay-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPaid, payment.Status)
	})

	t.Run("capture without authorization", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending}, nil)

		_, err := svc.Capture(context.Background(), "pay-1")

		var transErr entities.InvalidPaymentTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, entities.PaymentStatusPending, transErr.From)
		assert.Equal(t, entities.PaymentStatusPaid, transErr.To)
	})
}

func TestPaymentService_Refund(t *testing.T) {
	paid := entities.Payment{
		ID:      "pay-1",
		OrderID: "order-1",
		Status:  entities.PaymentStatusPaid,
		Amount:  decimal.RequireFromString("100.00"),
	}

	t.Run("partial refund", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetRefundByKey(mock.Anything, "key-1").
			Return(entities.Refund{}, entities.ErrRefundNotFound)
		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").Return(paid, nil)
		d.payments.EXPECT().SumRefunds(mock.Anything, "pay-1").Return(decimal.Zero, nil)
		d.payments.EXPECT().InsertRefund(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				assert.True(t, r.Amount.Equal(decimal.RequireFromString("30.00")))
				assert.Equal(t, entities.RefundStatusCompleted, r.Status)
				assert.Equal(t, "key-1", r.IdempotencyKey)
				assert.False(t, r.ProcessedAt.IsZero())
				r.ID = "ref-1"
				return r, nil
			})
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, upd entities.PaymentUpdate) error {
				assert.Equal(t, entities.PaymentStatusPartiallyRefunded, upd.Status)
				return nil
			})
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		refund, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{
			Amount:         decimal.RequireFromString("30.00"),
			Reason:         "damaged item",
			IdempotencyKey: "key-1",
			ProcessedBy:    "staff-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "ref-1", refund.ID)
	})

	t.Run("zero amount refunds the remainder and closes the order", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").Return(paid, nil)
		d.payments.EXPECT().SumRefunds(mock.Anything, "pay-1").
			Return(decimal.RequireFromString("40.00"), nil)
		d.payments.EXPECT().InsertRefund(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				assert.True(t, r.Amount.Equal(decimal.RequireFromString("60.00")))
				r.ID = "ref-2"
				return r, nil
			})
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, upd entities.PaymentUpdate) error {
				assert.Equal(t, entities.PaymentStatusRefunded, upd.Status)
				return nil
			})
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusRefunded, in.To)
				return service.TransitionResult{}, nil
			})
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		_, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{ProcessedBy: "staff-1"})
		assert.NoError(t, err)
	})

	t.Run("refunding an authorized payment closes a pending order", func(t *testing.T) {
		d, svc := newPaymentService(t)

		authorized := paid
		authorized.Status = entities.PaymentStatusAuthorized
		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").Return(authorized, nil)
		d.payments.EXPECT().SumRefunds(mock.Anything, "pay-1").Return(decimal.Zero, nil)
		d.payments.EXPECT().InsertRefund(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, r entities.Refund) (entities.Refund, error) {
				r.ID = "ref-3"
				return r, nil
			})
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, upd entities.PaymentUpdate) error {
				assert.Equal(t, entities.PaymentStatusRefunded, upd.Status)
				return nil
			})
		d.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusRefunded, in.To)
				return service.TransitionResult{}, nil
			})
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		require.True(t, entities.OrderStatusPending.CanTransitionTo(entities.OrderStatusRefunded))

		_, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{ProcessedBy: "staff-1"})
		assert.NoError(t, err)
	})

	t.Run("same idempotency key returns the stored refund", func(t *testing.T) {
		d, svc := newPaymentService(t)

		stored := entities.Refund{ID: "ref-1", PaymentID: "pay-1", IdempotencyKey: "key-1"}
		d.payments.EXPECT().GetRefundByKey(mock.Anything, "key-1").Return(stored, nil)

		refund, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{IdempotencyKey: "key-1"})
		require.NoError(t, err)
		assert.Equal(t, stored, refund)
	})

	t.Run("amount exceeds the remainder", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").Return(paid, nil)
		d.payments.EXPECT().SumRefunds(mock.Anything, "pay-1").
			Return(decimal.RequireFromString("90.00"), nil)

		_, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{
			Amount: decimal.RequireFromString("20.00"),
		})
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("nothing left to refund", func(t *testing.T) {
		d, svc := newPaymentService(t)

		refunded := paid
		refunded.Status = entities.PaymentStatusPartiallyRefunded
		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").Return(refunded, nil)
		d.payments.EXPECT().SumRefunds(mock.Anything, "pay-1").
			Return(decimal.RequireFromString("100.00"), nil)

		_, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{})
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})

	t.Run("pending payment is not refundable", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending}, nil)

		_, err := svc.Refund(context.Background(), "pay-1", service.RefundInput{})

		var transErr entities.InvalidPaymentTransitionError
		assert.ErrorAs(t, err, &transErr)
	})
}

func TestPaymentService_Fail(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending}, nil)
		d.payments.EXPECT().UpdatePayment(mock.Anything, "pay-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, upd entities.PaymentUpdate) error {
				assert.Equal(t, entities.PaymentStatusFailed, upd.Status)
				assert.Equal(t, "card_declined", upd.FailureCode)
				return nil
			})
		d.notifier.EXPECT().PaymentUpdated(mock.Anything).Return()

		payment, err := svc.Fail(context.Background(), "pay-1", "card_declined")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusFailed, payment.Status)
	})

	t.Run("paid payment cannot fail", func(t *testing.T) {
		d, svc := newPaymentService(t)

		d.payments.EXPECT().GetPaymentByIDForUpdate(mock.Anything, "pay-1").
			Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid}, nil)

		_, err := svc.Fail(context.Background(), "pay-1", "card_declined")

		var transErr entities.InvalidPaymentTransitionError
		assert.ErrorAs(t, err, &transErr)
	})
}
