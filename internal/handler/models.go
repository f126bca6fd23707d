package handler

import (
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
)

// Корзина

type AddCartItemRequest struct {
	SKUID    string `json:"sku_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type CartItem struct {
	ID        string `json:"id"`
	SKUID     string `json:"sku_id"`
	Quantity  int    `json:"quantity"`
	PriceAt   string `json:"price_at"`
	LineTotal string `json:"line_total"`
}

type Cart struct {
	ID        string     `json:"id"`
	Currency  string     `json:"currency"`
	Items     []CartItem `json:"items"`
	Subtotal  string     `json:"subtotal"`
	ItemCount int        `json:"item_count"`
}

func CartEntityToJSON(c entities.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItem{
			ID:        it.ID,
			SKUID:     it.SKUID,
			Quantity:  it.Qty,
			PriceAt:   it.PriceAt.StringFixed(2),
			LineTotal: it.LineTotal().StringFixed(2),
		})
	}
	return Cart{
		ID:        c.ID,
		Currency:  c.Currency,
		Items:     items,
		Subtotal:  c.Subtotal().StringFixed(2),
		ItemCount: c.ItemCount(),
	}
}

// Оформление заказа

type CheckoutRequest struct {
	CartID            string `json:"cart_id" validate:"required"`
	ShippingAddressID string `json:"shipping_address_id" validate:"required"`
	BillingAddressID  string `json:"billing_address_id" validate:"required"`
	ShippingMethod    string `json:"shipping_method" validate:"required,oneof=standard express pickup"`
	PaymentProvider   string `json:"payment_provider" validate:"required"`
	PaymentMethod     string `json:"payment_method" validate:"required"`
	Notes             string `json:"notes,omitempty"`
}

type CheckoutResponse struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
}

// Заказы

type Address struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone,omitempty"`
}

type OrderItem struct {
	ID        string `json:"id"`
	SKUID     string `json:"sku_id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number"`
	BuyerID         string      `json:"buyer_id"`
	StoreID         string      `json:"store_id"`
	Status          string      `json:"status"`
	Subtotal        string      `json:"subtotal"`
	ShippingCost    string      `json:"shipping_cost"`
	TaxAmount       string      `json:"tax_amount"`
	Total           string      `json:"total"`
	Currency        string      `json:"currency"`
	ShippingMethod  string      `json:"shipping_method"`
	ShippingAddress Address     `json:"shipping_address"`
	BillingAddress  Address     `json:"billing_address"`
	TrackingNumber  string      `json:"tracking_number,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Name:       a.Name,
		Street:     a.Street,
		Street2:    a.Street2,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		Phone:      a.Phone,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ID:        it.ID,
			SKUID:     it.SKUID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Total:     it.Total.StringFixed(2),
		})
	}
	return Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		BuyerID:         o.BuyerID,
		StoreID:         o.StoreID,
		Status:          string(o.Status),
		Subtotal:        o.Subtotal.StringFixed(2),
		ShippingCost:    o.ShippingCost.StringFixed(2),
		TaxAmount:       o.TaxAmount.StringFixed(2),
		Total:           o.Total.StringFixed(2),
		Currency:        o.Currency,
		ShippingMethod:  o.ShippingMethod,
		ShippingAddress: AddressEntityToJSON(o.ShippingAddress),
		BillingAddress:  AddressEntityToJSON(o.BillingAddress),
		TrackingNumber:  o.TrackingNumber,
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt,
	}
}

// Статусы

type TransitionRequest struct {
	Status         string `json:"status" validate:"required"`
	Notes          string `json:"notes,omitempty"`
	TrackingNumber string `json:"tracking_number,omitempty"`
}

type TransitionResponse struct {
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
	HistoryEntryID string `json:"history_entry_id,omitempty"`
}

type HistoryEntry struct {
	ID             string    `json:"id"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	ActorID        string    `json:"actor_id"`
	Notes          string    `json:"notes,omitempty"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func HistoryEntityToJSON(h entities.OrderHistory) HistoryEntry {
	return HistoryEntry{
		ID:             h.ID,
		FromStatus:     string(h.FromStatus),
		ToStatus:       string(h.ToStatus),
		ActorID:        h.ActorID,
		Notes:          h.Notes,
		TrackingNumber: h.TrackingNumber,
		CreatedAt:      h.CreatedAt,
	}
}

// Платежи

type AuthorizeRequest struct {
	ProviderRef string `json:"provider_ref" validate:"required"`
}

type RefundRequest struct {
	Amount         string `json:"amount,omitempty"`
	Reason         string `json:"reason" validate:"required"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type Payment struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	Provider     string     `json:"provider"`
	ProviderRef  string     `json:"provider_ref,omitempty"`
	Method       string     `json:"method"`
	Status       string     `json:"status"`
	Currency     string     `json:"currency"`
	Amount       string     `json:"amount"`
	AuthorizedAt *time.Time `json:"authorized_at,omitempty"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	FailureCode  string     `json:"failure_code,omitempty"`
}

func PaymentEntityToJSON(p entities.Payment) Payment {
	out := Payment{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Provider:    p.Provider,
		ProviderRef: p.ProviderRef,
		Method:      p.Method,
		Status:      string(p.Status),
		Currency:    p.Currency,
		Amount:      p.Amount.StringFixed(2),
		FailureCode: p.FailureCode,
	}
	if !p.AuthorizedAt.IsZero() {
		t := p.AuthorizedAt
		out.AuthorizedAt = &t
	}
	if !p.PaidAt.IsZero() {
		t := p.PaidAt
		out.PaidAt = &t
	}
	return out
}

type CaptureResponse struct {
	Status         string     `json:"status"`
	CapturedAmount string     `json:"captured_amount"`
	CapturedAt     *time.Time `json:"captured_at,omitempty"`
}

type RefundResponse struct {
	Status         string    `json:"status"`
	RefundedAmount string    `json:"refunded_amount"`
	RefundedAt     time.Time `json:"refunded_at"`
}

// Склад

type AdjustStockRequest struct {
	Location string `json:"location" validate:"required"`
	Delta    int    `json:"delta" validate:"required"`
	Notes    string `json:"notes,omitempty"`
}

type LowStockItem struct {
	SKUID        string `json:"sku_id"`
	SKUCode      string `json:"sku_code"`
	CurrentStock int    `json:"current_stock"`
	Threshold    int    `json:"threshold"`
}

// Возвраты и отправления

type CreateReturnRequest struct {
	OrderItemID string `json:"order_item_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Reason      string `json:"reason" validate:"required"`
}

type Return struct {
	ID          string    `json:"id"`
	OrderItemID string    `json:"order_item_id"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	RequestedBy string    `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func ReturnEntityToJSON(r entities.ReturnRequest) Return {
	return Return{
		ID:          r.ID,
		OrderItemID: r.OrderItemID,
		Quantity:    r.Quantity,
		Reason:      r.Reason,
		Status:      string(r.Status),
		RequestedBy: r.RequestedBy,
		CreatedAt:   r.CreatedAt,
	}
}

type CreateShipmentRequest struct {
	OrderID      string `json:"order_id" validate:"required"`
	Carrier      string `json:"carrier" validate:"required"`
	TrackingCode string `json:"tracking_code,omitempty"`
}

type Shipment struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"order_id"`
	Carrier      string     `json:"carrier"`
	TrackingCode string     `json:"tracking_code,omitempty"`
	Status       string     `json:"status"`
	ShippedAt    *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ShipmentEntityToJSON(s entities.Shipment) Shipment {
	out := Shipment{
		ID:           s.ID,
		OrderID:      s.OrderID,
		Carrier:      s.Carrier,
		TrackingCode: s.TrackingCode,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
	if !s.ShippedAt.IsZero() {
		t := s.ShippedAt
		out.ShippedAt = &t
	}
	if !s.DeliveredAt.IsZero() {
		t := s.DeliveredAt
		out.DeliveredAt = &t
	}
	return out
}
