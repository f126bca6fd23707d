package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

const publishTimeout = 5 * time.Second

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventPaymentUpdated     = "payment.updated"
)

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	BuyerID     string    `json:"buyer_id"`
	Status      string    `json:"status"`
	FromStatus  string    `json:"from_status,omitempty"`
	Total       string    `json:"total,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PaymentEvent struct {
	Type       string    `json:"type"`
	PaymentID  string    `json:"payment_id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher шлет доменные события в кафку. Доставка fire-and-forget:
// заказ не должен падать из-за недоступного брокера
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.OrderEventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
			Async:        false,
		},
	}
}

func (p *Publisher) OrderCreated(order entities.Order) {
	p.publish(order.ID, OrderEvent{
		Type:        EventOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		BuyerID:     order.BuyerID,
		Status:      string(order.Status),
		Total:       order.Total.StringFixed(2),
		Currency:    order.Currency,
		OccurredAt:  time.Now(),
	})
}

func (p *Publisher) OrderStatusChanged(order entities.Order, history entities.OrderHistory) {
	p.publish(order.ID, OrderEvent{
		Type:        EventOrderStatusChanged,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		BuyerID:     order.BuyerID,
		Status:      string(history.ToStatus),
		FromStatus:  string(history.FromStatus),
		OccurredAt:  time.Now(),
	})
}

func (p *Publisher) PaymentUpdated(payment entities.Payment) {
	p.publish(payment.OrderID, PaymentEvent{
		Type:       EventPaymentUpdated,
		PaymentID:  payment.ID,
		OrderID:    payment.OrderID,
		Status:     string(payment.Status),
		Amount:     payment.Amount.StringFixed(2),
		Currency:   payment.Currency,
		OccurredAt: time.Now(),
	})
}

func (p *Publisher) publish(key string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal event", slog.Any("error", err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload}); err != nil {
			p.logger.Error("failed to publish event", slog.Any("error", err), slog.String("key", key))
		}
	}()
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
