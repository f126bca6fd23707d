package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentEvent struct {
	EventID     string `json:"event_id"`
	Type        string `json:"type"`
	PaymentID   string `json:"payment_id"`
	ProviderRef string `json:"provider_ref,omitempty"`
	FailureCode string `json:"failure_code,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

var eventTypes = []string{
	"payment.authorized",
	"payment.captured",
	"payment.failed",
	"payment.refunded",
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// generateEvent шлет события по случайному payment_id: сервис должен
// спокойно отвечать NOT_FOUND / INVALID_TRANSITION, а не падать.
// Реальный payment_id можно передать аргументом
func generateEvent(paymentID string) PaymentEvent {
	event := PaymentEvent{
		EventID:   randomString(16),
		Type:      eventTypes[rand.Intn(len(eventTypes))],
		PaymentID: paymentID,
	}

	switch event.Type {
	case "payment.authorized":
		event.ProviderRef = "ref_" + randomString(12)
	case "payment.failed":
		event.FailureCode = fmt.Sprintf("card_declined_%d", rand.Intn(5))
	case "payment.refunded":
		event.Amount = fmt.Sprintf("%d.%02d", rand.Intn(100)+1, rand.Intn(100))
		event.Reason = "requested by customer"
	}
	return event
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: "payment-events",
	}

	paymentID := ""
	if len(os.Args) > 1 {
		paymentID = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			id := paymentID
			if id == "" {
				id = randomString(16)
			}
			event := generateEvent(id)
			data, _ := json.Marshal(event)
			writer.WriteMessages(context.Background(), kafka.Message{Key: []byte(id), Value: data})
			log.Println("event generated", event.Type, event.PaymentID)
		case <-ctx.Done():
			return
		}
	}
}
