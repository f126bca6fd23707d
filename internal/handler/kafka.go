package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	eventPaymentAuthorized = "payment.authorized"
	eventPaymentCaptured   = "payment.captured"
	eventPaymentFailed     = "payment.failed"
	eventPaymentRefunded   = "payment.refunded"
)

// PaymentEvent — событие платежного провайдера из кафки
type PaymentEvent struct {
	EventID     string `json:"event_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=payment.authorized payment.captured payment.failed payment.refunded"`
	PaymentID   string `json:"payment_id" validate:"required"`
	ProviderRef string `json:"provider_ref,omitempty"`
	FailureCode string `json:"failure_code,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type PaymentProcessor interface {
	Authorize(ctx context.Context, paymentID, providerRef string) (entities.Payment, error)
	Capture(ctx context.Context, paymentID string) (entities.Payment, error)
	Fail(ctx context.Context, paymentID, failureCode string) (entities.Payment, error)
	Refund(ctx context.Context, paymentID string, in service.RefundInput) (entities.Refund, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentProcessor
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, payments PaymentProcessor) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.PaymentEventsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		payments: payments,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handlePaymentEvent(ctx, m); err != nil {
			paymentEventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			paymentEventsDLQ.Inc()
		} else {
			paymentEventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}
	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	var err error
	switch event.Type {
	case eventPaymentAuthorized:
		_, err = h.payments.Authorize(ctx, event.PaymentID, event.ProviderRef)
	case eventPaymentCaptured:
		_, err = h.payments.Capture(ctx, event.PaymentID)
	case eventPaymentFailed:
		_, err = h.payments.Fail(ctx, event.PaymentID, event.FailureCode)
	case eventPaymentRefunded:
		amount := decimal.Zero
		if event.Amount != "" {
			amount, err = decimal.NewFromString(event.Amount)
			if err != nil {
				return fmt.Errorf("invalid refund amount %q: %w", event.Amount, err)
			}
		}
		// идентификатор события защищает от повторной доставки
		_, err = h.payments.Refund(ctx, event.PaymentID, service.RefundInput{
			Amount:         amount,
			Reason:         event.Reason,
			IdempotencyKey: event.EventID,
			ProcessedBy:    "payment-provider",
		})
	}
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", event.Type, err)
	}
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
