package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) error
	InsertItems(ctx context.Context, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByIDForUpdate(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, trackingNumber string) error
	InsertHistory(ctx context.Context, h entities.OrderHistory) (entities.OrderHistory, error)
	HasTransitionTo(ctx context.Context, orderID string, statuses ...entities.OrderStatus) (bool, error)
	ListHistory(ctx context.Context, orderID string) ([]entities.OrderHistory, error)
	GetOrderItemByID(ctx context.Context, itemID string) (entities.OrderItem, error)
}

type PaymentRepo interface {
	InsertPayment(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetPaymentByID(ctx context.Context, paymentID string) (entities.Payment, error)
	GetPaymentByIDForUpdate(ctx context.Context, paymentID string) (entities.Payment, error)
	GetActivePaymentByOrder(ctx context.Context, orderID string) (entities.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, upd entities.PaymentUpdate) error
	InsertRefund(ctx context.Context, refund entities.Refund) (entities.Refund, error)
	GetRefundByKey(ctx context.Context, idempotencyKey string) (entities.Refund, error)
	SumRefunds(ctx context.Context, paymentID string) (decimal.Decimal, error)
}

// Ledger — контракт складской книги для оркестраторов
type Ledger interface {
	Decrement(ctx context.Context, skuID string, qty int, orderID string) (int, error)
	Increment(ctx context.Context, skuID string, qty int, orderID string, reason entities.InventoryTxType, notes string) error
	TotalStock(ctx context.Context, skuID string) (int, error)
}

// Notifier — доставка уведомлений: fire-and-forget, транзакцию не блокирует
// и не роняет
type Notifier interface {
	OrderCreated(order entities.Order)
	OrderStatusChanged(order entities.Order, history entities.OrderHistory)
	PaymentUpdated(payment entities.Payment)
}

type CheckoutInput struct {
	CartID            string
	ShippingAddressID string
	BillingAddressID  string
	ShippingMethod    string
	PaymentProvider   string
	PaymentMethod     string
	Notes             string
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	catalog   CatalogReader
	orders    OrderRepo
	payments  PaymentRepo
	ledger    Ledger
	notifier  Notifier
	conf      config.Checkout
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	catalog CatalogReader,
	orders OrderRepo,
	payments PaymentRepo,
	ledger Ledger,
	notifier Notifier,
	conf config.Checkout,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		carts:     carts,
		catalog:   catalog,
		orders:    orders,
		payments:  payments,
		ledger:    ledger,
		notifier:  notifier,
		conf:      conf,
	}
}

// Checkout превращает корзину в заказ одной транзакцией: заказ и позиции,
// списание остатков с проводками, очистка корзины и платеж PENDING.
// Любая ошибка внутри откатывает всё — частичных заказов не бывает
func (s *checkoutService) Checkout(ctx context.Context, buyerID string, in CheckoutInput) (entities.Order, error) {
	cart, err := s.carts.GetCartByID(ctx, in.CartID)
	if err != nil {
		return entities.Order{}, err
	}
	if cart.OwnerID != buyerID {
		return entities.Order{}, entities.ErrForbidden
	}
	if len(cart.Items) == 0 {
		return entities.Order{}, entities.ErrCartEmpty
	}

	shippingAddr, err := s.resolveAddress(ctx, in.ShippingAddressID, buyerID)
	if err != nil {
		return entities.Order{}, err
	}
	billingAddr, err := s.resolveAddress(ctx, in.BillingAddressID, buyerID)
	if err != nil {
		return entities.Order{}, err
	}

	shippingCost, err := s.shippingCost(in.ShippingMethod)
	if err != nil {
		return entities.Order{}, err
	}

	// Предварительная проверка: живая цена должна совпадать со снимком
	// в корзине, остатка должно хватать. Гонку это окно не закрывает,
	// авторитетная проверка — списание внутри транзакции
	skus := make(map[string]entities.SKU, len(cart.Items))
	for _, item := range cart.Items {
		sku, err := s.catalog.GetSKU(ctx, item.SKUID)
		if err != nil {
			return entities.Order{}, err
		}
		if !sku.Price.Equal(item.PriceAt) {
			return entities.Order{}, entities.PriceChangedError{SKUID: sku.ID, Was: item.PriceAt, Now: sku.Price}
		}

		available, err := s.ledger.TotalStock(ctx, item.SKUID)
		if err != nil {
			return entities.Order{}, err
		}
		if available < item.Qty {
			return entities.Order{}, entities.InsufficientStockError{SKUID: item.SKUID, Requested: item.Qty, Available: available}
		}
		skus[item.SKUID] = sku
	}

	order, err := s.placeOrder(ctx, buyerID, in, cart, skus, shippingAddr, billingAddr, shippingCost)
	// гонка по номеру заказа безопасно повторяется один раз с новым номером
	if errors.Is(err, entities.ErrConflict) {
		s.logger.WarnContext(ctx, "order number collision, retrying", slog.String("cart_id", cart.ID))
		order, err = s.placeOrder(ctx, buyerID, in, cart, skus, shippingAddr, billingAddr, shippingCost)
	}
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.Total.String()),
	)
	s.notifier.OrderCreated(order)
	return order, nil
}

func (s *checkoutService) placeOrder(
	ctx context.Context,
	buyerID string,
	in CheckoutInput,
	cart entities.Cart,
	skus map[string]entities.SKU,
	shippingAddr, billingAddr entities.Address,
	shippingCost decimal.Decimal,
) (entities.Order, error) {
	subtotal := cart.Subtotal()
	taxAmount := subtotal.Mul(s.conf.TaxRate).Round(2)

	order := entities.Order{
		ID:           uuid.NewString(),
		OrderNumber:  generateOrderNumber(),
		BuyerID:      buyerID,
		StoreID:      skus[cart.Items[0].SKUID].StoreID,
		Status:       entities.OrderStatusPending,
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		TaxAmount:    taxAmount,
		Total:        subtotal.Add(shippingCost).Add(taxAmount),
		Currency:     s.conf.Currency,

		ShippingMethod:  in.ShippingMethod,
		ShippingAddress: shippingAddr,
		BillingAddress:  billingAddr,

		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	items := make([]entities.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		sku := skus[item.SKUID]
		items = append(items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			SKUID:     item.SKUID,
			ProductID: sku.ProductID,
			Name:      sku.Name,
			Quantity:  item.Qty,
			UnitPrice: item.PriceAt,
			Total:     item.LineTotal(),
		})
	}
	order.Items = items

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := s.orders.InsertItems(ctx, items); err != nil {
			return err
		}

		// авторитетное списание: проигрыш гонки откатывает заказ целиком
		for _, item := range items {
			if _, err := s.ledger.Decrement(ctx, item.SKUID, item.Quantity, order.ID); err != nil {
				return err
			}
		}

		if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
			return err
		}

		payment, err := s.payments.InsertPayment(ctx, entities.Payment{
			OrderID:  order.ID,
			Provider: in.PaymentProvider,
			Method:   in.PaymentMethod,
			Status:   entities.PaymentStatusPending,
			Currency: order.Currency,
			Amount:   order.Total,
		})
		if err != nil {
			return err
		}

		s.logger.DebugContext(ctx, "checkout transaction prepared",
			slog.String("order_id", order.ID), slog.String("payment_id", payment.ID))
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *checkoutService) resolveAddress(ctx context.Context, addressID, buyerID string) (entities.Address, error) {
	addr, ownerID, err := s.catalog.GetAddress(ctx, addressID)
	if err != nil {
		return entities.Address{}, err
	}
	if ownerID != buyerID {
		return entities.Address{}, entities.ErrForbidden
	}
	return addr, nil
}

// shippingCost — фиксированная таблица способов доставки
func (s *checkoutService) shippingCost(method string) (decimal.Decimal, error) {
	switch method {
	case "standard":
		return s.conf.ShippingStandard, nil
	case "express":
		return s.conf.ShippingExpress, nil
	case "pickup":
		return s.conf.ShippingPickup, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown shipping method %q: %w", method, entities.ErrInvalidAmount)
	}
}

// generateOrderNumber — ORD-YYYYMMDD-NNNNN. Вероятность коллизии принята
// пренебрежимо малой, конфликт вставки обрабатывается повтором
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%05d", time.Now().Format("20060102"), 10000+rand.Intn(90000))
}
