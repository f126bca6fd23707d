package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Currency  string    `db:"currency"`
	CreatedAt time.Time `db:"created_at"`
}

type CartItem struct {
	ID      string          `db:"id"`
	CartID  string          `db:"cart_id"`
	SKUID   string          `db:"sku_id"`
	Qty     int             `db:"qty"`
	PriceAt decimal.Decimal `db:"price_at"`
	AddedAt time.Time       `db:"added_at"`
}

type SKU struct {
	ID         string          `db:"id"`
	ProductID  string          `db:"product_id"`
	StoreID    string          `db:"store_id"`
	Code       sql.NullString  `db:"code"`
	Name       string          `db:"name"`
	Price      decimal.Decimal `db:"price_amount"`
	Currency   string          `db:"price_currency"`
	Attributes []byte          `db:"attributes"`
}

type Inventory struct {
	ID       string `db:"id"`
	SKUID    string `db:"sku_id"`
	Location string `db:"location"`
	Stock    int    `db:"stock"`
}

type InventoryTransaction struct {
	ID          string         `db:"id"`
	InventoryID string         `db:"inventory_id"`
	OrderID     sql.NullString `db:"order_id"`
	Quantity    int            `db:"quantity"`
	Type        string         `db:"type"`
	Notes       sql.NullString `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
}

type LowStockRow struct {
	SKUID   string         `db:"sku_id"`
	SKUCode sql.NullString `db:"sku_code"`
	Stock   int            `db:"total_stock"`
}

type Order struct {
	ID           string          `db:"id"`
	OrderNumber  string          `db:"order_number"`
	BuyerID      string          `db:"buyer_id"`
	StoreID      string          `db:"store_id"`
	Status       string          `db:"status"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	ShippingCost decimal.Decimal `db:"shipping_cost"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
	Total        decimal.Decimal `db:"total"`
	Currency     string          `db:"currency"`

	ShippingMethod  string `db:"shipping_method"`
	ShippingAddress []byte `db:"shipping_address"`
	BillingAddress  []byte `db:"billing_address"`

	TrackingNumber sql.NullString `db:"tracking_number"`
	Notes          sql.NullString `db:"notes"`
	CreatedAt      time.Time      `db:"created_at"`
}

type OrderItem struct {
	ID        string          `db:"id"`
	OrderID   string          `db:"order_id"`
	SKUID     string          `db:"sku_id"`
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Total     decimal.Decimal `db:"total"`
}

type OrderHistory struct {
	ID             string         `db:"id"`
	OrderID        string         `db:"order_id"`
	FromStatus     string         `db:"from_status"`
	ToStatus       string         `db:"to_status"`
	ActorID        sql.NullString `db:"actor_id"`
	Notes          sql.NullString `db:"notes"`
	TrackingNumber sql.NullString `db:"tracking_number"`
	CreatedAt      time.Time      `db:"created_at"`
}

type Payment struct {
	ID          string          `db:"id"`
	OrderID     string          `db:"order_id"`
	Provider    string          `db:"provider"`
	ProviderRef sql.NullString  `db:"provider_ref"`
	Method      sql.NullString  `db:"method"`
	Status      string          `db:"status"`
	Currency    string          `db:"currency"`
	Amount      decimal.Decimal `db:"amount"`

	AuthorizedAt sql.NullTime   `db:"authorized_at"`
	PaidAt       sql.NullTime   `db:"paid_at"`
	FailureCode  sql.NullString `db:"failure_code"`
	CreatedAt    time.Time      `db:"created_at"`
}

type Refund struct {
	ID             string          `db:"id"`
	PaymentID      string          `db:"payment_id"`
	Amount         decimal.Decimal `db:"amount"`
	Reason         sql.NullString  `db:"reason"`
	Status         string          `db:"status"`
	IdempotencyKey sql.NullString  `db:"idempotency_key"`
	ProcessedBy    sql.NullString  `db:"processed_by"`
	ProcessedAt    sql.NullTime    `db:"processed_at"`
}

type ReturnRequest struct {
	ID          string         `db:"id"`
	OrderItemID string         `db:"order_item_id"`
	Quantity    int            `db:"quantity"`
	Reason      sql.NullString `db:"reason"`
	Status      string         `db:"status"`
	RequestedBy string         `db:"requested_by"`
	CreatedAt   time.Time      `db:"created_at"`
}

type Shipment struct {
	ID           string         `db:"id"`
	OrderID      string         `db:"order_id"`
	Carrier      sql.NullString `db:"carrier"`
	TrackingCode sql.NullString `db:"tracking_code"`
	Status       string         `db:"status"`
	ShippedAt    sql.NullTime   `db:"shipped_at"`
	DeliveredAt  sql.NullTime   `db:"delivered_at"`
	CreatedAt    time.Time      `db:"created_at"`
}

// Address — строка из адресной книги (внешний коллаборатор, только чтение)
type Address struct {
	ID         string         `db:"id"`
	UserID     string         `db:"user_id"`
	Name       string         `db:"name"`
	Street     string         `db:"street"`
	Street2    sql.NullString `db:"street2"`
	City       string         `db:"city"`
	State      sql.NullString `db:"state"`
	Country    string         `db:"country"`
	PostalCode sql.NullString `db:"postal_code"`
	Phone      sql.NullString `db:"phone"`
}

func CartToEntity(c Cart, items []CartItem) entities.Cart {
	cart := entities.Cart{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Currency:  c.Currency,
		CreatedAt: c.CreatedAt,
	}
	if len(items) > 0 {
		cart.Items = make([]entities.CartItem, 0, len(items))
		for _, it := range items {
			cart.Items = append(cart.Items, CartItemToEntity(it))
		}
	}
	return cart
}

func CartItemToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:      i.ID,
		CartID:  i.CartID,
		SKUID:   i.SKUID,
		Qty:     i.Qty,
		PriceAt: i.PriceAt,
		AddedAt: i.AddedAt,
	}
}

func SKUToEntity(s SKU) entities.SKU {
	sku := entities.SKU{
		ID:        s.ID,
		ProductID: s.ProductID,
		StoreID:   s.StoreID,
		Code:      nullStringToString(s.Code),
		Name:      s.Name,
		Price:     s.Price,
		Currency:  s.Currency,
	}
	if len(s.Attributes) > 0 {
		// схема значений версионируется снаружи, ядро их только показывает
		_ = json.Unmarshal(s.Attributes, &sku.Attributes)
	}
	return sku
}

func InventoryToEntity(i Inventory) entities.Inventory {
	return entities.Inventory{
		ID:       i.ID,
		SKUID:    i.SKUID,
		Location: i.Location,
		Stock:    i.Stock,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		BuyerID:      o.BuyerID,
		StoreID:      o.StoreID,
		Status:       entities.OrderStatus(o.Status),
		Subtotal:     o.Subtotal,
		ShippingCost: o.ShippingCost,
		TaxAmount:    o.TaxAmount,
		Total:        o.Total,
		Currency:     o.Currency,

		ShippingMethod: o.ShippingMethod,

		TrackingNumber: nullStringToString(o.TrackingNumber),
		Notes:          nullStringToString(o.Notes),
		CreatedAt:      o.CreatedAt,
	}

	_ = json.Unmarshal(o.ShippingAddress, &order.ShippingAddress)
	_ = json.Unmarshal(o.BillingAddress, &order.BillingAddress)

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}
	return order
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		SKUID:     i.SKUID,
		ProductID: i.ProductID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice,
		Total:     i.Total,
	}
}

func HistoryToEntity(h OrderHistory) entities.OrderHistory {
	return entities.OrderHistory{
		ID:             h.ID,
		OrderID:        h.OrderID,
		FromStatus:     entities.OrderStatus(h.FromStatus),
		ToStatus:       entities.OrderStatus(h.ToStatus),
		ActorID:        nullStringToString(h.ActorID),
		Notes:          nullStringToString(h.Notes),
		TrackingNumber: nullStringToString(h.TrackingNumber),
		CreatedAt:      h.CreatedAt,
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Provider:    p.Provider,
		ProviderRef: nullStringToString(p.ProviderRef),
		Method:      nullStringToString(p.Method),
		Status:      entities.PaymentStatus(p.Status),
		Currency:    p.Currency,
		Amount:      p.Amount,

		AuthorizedAt: nullTimeToTime(p.AuthorizedAt),
		PaidAt:       nullTimeToTime(p.PaidAt),
		FailureCode:  nullStringToString(p.FailureCode),
		CreatedAt:    p.CreatedAt,
	}
}

func RefundToEntity(r Refund) entities.Refund {
	return entities.Refund{
		ID:             r.ID,
		PaymentID:      r.PaymentID,
		Amount:         r.Amount,
		Reason:         nullStringToString(r.Reason),
		Status:         entities.RefundStatus(r.Status),
		IdempotencyKey: nullStringToString(r.IdempotencyKey),
		ProcessedBy:    nullStringToString(r.ProcessedBy),
		ProcessedAt:    nullTimeToTime(r.ProcessedAt),
	}
}

func ReturnToEntity(r ReturnRequest) entities.ReturnRequest {
	return entities.ReturnRequest{
		ID:          r.ID,
		OrderItemID: r.OrderItemID,
		Quantity:    r.Quantity,
		Reason:      nullStringToString(r.Reason),
		Status:      entities.ReturnStatus(r.Status),
		RequestedBy: r.RequestedBy,
		CreatedAt:   r.CreatedAt,
	}
}

func ShipmentToEntity(s Shipment) entities.Shipment {
	return entities.Shipment{
		ID:           s.ID,
		OrderID:      s.OrderID,
		Carrier:      nullStringToString(s.Carrier),
		TrackingCode: nullStringToString(s.TrackingCode),
		Status:       entities.ShipmentStatus(s.Status),
		ShippedAt:    nullTimeToTime(s.ShippedAt),
		DeliveredAt:  nullTimeToTime(s.DeliveredAt),
		CreatedAt:    s.CreatedAt,
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		Name:       a.Name,
		Street:     a.Street,
		Street2:    nullStringToString(a.Street2),
		City:       a.City,
		State:      nullStringToString(a.State),
		Country:    a.Country,
		PostalCode: nullStringToString(a.PostalCode),
		Phone:      nullStringToString(a.Phone),
	}
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
