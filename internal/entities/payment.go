package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID          string
	OrderID     string
	Provider    string
	ProviderRef string
	Method      string
	Status      PaymentStatus
	Currency    string
	Amount      decimal.Decimal

	AuthorizedAt time.Time
	PaidAt       time.Time
	FailureCode  string
	CreatedAt    time.Time
}

// PaymentUpdate — частичное обновление платежа, нулевые поля не трогаются
type PaymentUpdate struct {
	Status       PaymentStatus
	ProviderRef  string
	AuthorizedAt time.Time
	PaidAt       time.Time
	FailureCode  string
}

type Refund struct {
	ID             string
	PaymentID      string
	Amount         decimal.Decimal
	Reason         string
	Status         RefundStatus
	IdempotencyKey string
	ProcessedBy    string
	ProcessedAt    time.Time
}

type ReturnRequest struct {
	ID          string
	OrderItemID string
	Quantity    int
	Reason      string
	Status      ReturnStatus
	RequestedBy string
	CreatedAt   time.Time
}

type Shipment struct {
	ID           string
	OrderID      string
	Carrier      string
	TrackingCode string
	Status       ShipmentStatus
	ShippedAt    time.Time
	DeliveredAt  time.Time
	CreatedAt    time.Time
}

type ShipmentUpdate struct {
	Status      ShipmentStatus
	ShippedAt   time.Time
	DeliveredAt time.Time
}
