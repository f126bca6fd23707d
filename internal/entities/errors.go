package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrSKUNotFound      = errors.New("sku not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrRefundNotFound   = errors.New("refund not found")
	ErrReturnNotFound   = errors.New("return request not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrShipmentExists   = errors.New("shipment already exists for order")
	ErrAddressNotFound  = errors.New("address not found")

	ErrForbidden     = errors.New("forbidden")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrConflict сигнализирует о гонке по уникальному ключу (например, номер заказа),
	// весь checkout можно безопасно повторить один раз
	ErrConflict = errors.New("conflict")

	ErrInvalidOrder = errors.New("invalid order data")
)

type InsufficientStockError struct {
	SKUID     string
	Requested int
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for sku %s: requested %d, available %d", e.SKUID, e.Requested, e.Available)
}

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition from %s to %s", e.From, e.To)
}

type InvalidPaymentTransitionError struct {
	From PaymentStatus
	To   PaymentStatus
}

func (e InvalidPaymentTransitionError) Error() string {
	return fmt.Sprintf("invalid payment status transition from %s to %s", e.From, e.To)
}

type PriceChangedError struct {
	SKUID string
	Was   decimal.Decimal
	Now   decimal.Decimal
}

func (e PriceChangedError) Error() string {
	return fmt.Sprintf("price changed for sku %s: was %s, now %s", e.SKUID, e.Was, e.Now)
}
