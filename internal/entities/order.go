package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string
	OrderNumber  string
	BuyerID      string
	StoreID      string
	Status       OrderStatus
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	TaxAmount    decimal.Decimal
	Total        decimal.Decimal
	Currency     string

	ShippingMethod  string
	ShippingAddress Address
	BillingAddress  Address

	TrackingNumber string
	Notes          string
	CreatedAt      time.Time

	Items []OrderItem
}

// Address — снимок адреса на момент оформления, не живая ссылка
type Address struct {
	Name       string
	Street     string
	Street2    string
	City       string
	State      string
	Country    string
	PostalCode string
	Phone      string
}

type OrderItem struct {
	ID        string
	OrderID   string
	SKUID     string
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type OrderHistory struct {
	ID             string
	OrderID        string
	FromStatus     OrderStatus
	ToStatus       OrderStatus
	ActorID        string
	Notes          string
	TrackingNumber string
	CreatedAt      time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Address{})
}
