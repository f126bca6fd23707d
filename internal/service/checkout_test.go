package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutConfig() config.Checkout {
	return config.Checkout{
		Currency:         "USD",
		TaxRate:          decimal.RequireFromString("0.10"),
		ShippingStandard: decimal.RequireFromString("5.99"),
		ShippingExpress:  decimal.RequireFromString("12.99"),
		ShippingPickup:   decimal.Zero,
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	price := decimal.RequireFromString("10.00")

	cart := entities.Cart{
		ID:       "cart-1",
		OwnerID:  "buyer-1",
		Currency: "USD",
		Items: []entities.CartItem{
			{ID: "item-1", CartID: "cart-1", SKUID: "sku-1", Qty: 2, PriceAt: price},
		},
	}
	sku := entities.SKU{
		ID:        "sku-1",
		ProductID: "prod-1",
		StoreID:   "store-1",
		Name:      "Mug",
		Price:     price,
		Currency:  "USD",
	}
	input := service.CheckoutInput{
		CartID:            "cart-1",
		ShippingAddressID: "addr-1",
		BillingAddressID:  "addr-1",
		ShippingMethod:    "standard",
		PaymentProvider:   "stripe",
		PaymentMethod:     "card",
	}

	type deps struct {
		carts    *mocks.MockCartRepo
		catalog  *mocks.MockCatalogReader
		orders   *mocks.MockOrderRepo
		payments *mocks.MockPaymentRepo
		ledger   *mocks.MockLedger
		notifier *mocks.MockNotifier
	}

	happyPrechecks := func(d deps) {
		d.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)
		d.catalog.EXPECT().GetAddress(mock.Anything, "addr-1").Return(entities.Address{City: "Omsk"}, "buyer-1", nil)
		d.catalog.EXPECT().GetSKU(mock.Anything, "sku-1").Return(sku, nil)
		d.ledger.EXPECT().TotalStock(mock.Anything, "sku-1").Return(5, nil)
	}

	testCases := []struct {
		name         string
		buyerID      string
		input        service.CheckoutInput
		mockBehavior func(d deps)
		check        func(t *testing.T, order entities.Order)
		wantErr      error
	}{
		{
			name:    "OK, totals are exact",
			buyerID: "buyer-1",
			input:   input,
			mockBehavior: func(d deps) {
				happyPrechecks(d)

				d.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) error {
						assert.True(t, o.Subtotal.Equal(decimal.RequireFromString("20.00")), "subtotal %s", o.Subtotal)
						assert.True(t, o.ShippingCost.Equal(decimal.RequireFromString("5.99")), "shipping %s", o.ShippingCost)
						assert.True(t, o.TaxAmount.Equal(decimal.RequireFromString("2.00")), "tax %s", o.TaxAmount)
						assert.True(t, o.Total.Equal(decimal.RequireFromString("27.99")), "total %s", o.Total)
						assert.Equal(t, entities.OrderStatusPending, o.Status)
						assert.Regexp(t, `^ORD-\d{8}-\d{5}$`, o.OrderNumber)
						return nil
					})
				d.orders.EXPECT().InsertItems(mock.Anything, mock.Anything).Return(nil)
				d.ledger.EXPECT().Decrement(mock.Anything, "sku-1", 2, mock.Anything).Return(3, nil)
				d.carts.EXPECT().ClearItems(mock.Anything, "cart-1").Return(nil)
				d.payments.EXPECT().InsertPayment(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
						assert.True(t, p.Amount.Equal(decimal.RequireFromString("27.99")))
						assert.Equal(t, entities.PaymentStatusPending, p.Status)
						p.ID = "pay-1"
						return p, nil
					})
				d.notifier.EXPECT().OrderCreated(mock.Anything).Return()
			},
			check: func(t *testing.T, order entities.Order) {
				require.Len(t, order.Items, 1)
				assert.Equal(t, 2, order.Items[0].Quantity)
				assert.Equal(t, "store-1", order.StoreID)
			},
		},
		{
			name:    "foreign cart",
			buyerID: "someone-else",
			input:   input,
			mockBehavior: func(d deps) {
				d.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:    "empty cart",
			buyerID: "buyer-1",
			input:   input,
			mockBehavior: func(d deps) {
				d.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").
					Return(entities.Cart{ID: "cart-1", OwnerID: "buyer-1"}, nil)
			},
			wantErr: entities.ErrCartEmpty,
		},
		{
			name:    "price changed since the cart snapshot",
			buyerID: "buyer-1",
			input:   input,
			mockBehavior: func(d deps) {
				changed := sku
				changed.Price = decimal.RequireFromString("12.50")
				d.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)
				d.catalog.EXPECT().GetAddress(mock.Anything, "addr-1").Return(entities.Address{}, "buyer-1", nil)
				d.catalog.EXPECT().GetSKU(mock.Anything, "sku-1").Return(changed, nil)
			},
			wantErr: entities.PriceChangedError{
				SKUID: "sku-1",
				Was:   price,
				Now:   decimal.RequireFromString("12.50"),
			},
		},
		{
			name:    "not enough stock on precheck",
			buyerID: "buyer-1",
			input:   input,
			mockBehavior: func(d deps) {
				d.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)
				d.catalog.EXPECT().GetAddress(mock.Anything, "addr-1").Return(entities.Address{}, "buyer-1", nil)
				d.catalog.EXPECT().GetSKU(mock.Anything, "sku-1").Return(sku, nil)
				d.ledger.EXPECT().TotalStock(mock.Anything, "sku-1").Return(1, nil)
			},
			wantErr: entities.InsufficientStockError{SKUID: "sku-1", Requested: 2, Available: 1},
		},
		{
			name:    "decrement fails inside the transaction",
			buyerID: "buyer-1",
			input:   input,
			mockBehavior: func(d deps) {
				happyPrechecks(d)
				d.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).Return(nil)
				d.orders.EXPECT().InsertItems(mock.Anything, mock.Anything).Return(nil)
				d.ledger.EXPECT().Decrement(mock.Anything, "sku-1", 2, mock.Anything).
					Return(0, entities.InsufficientStockError{SKUID: "sku-1", Requested: 2, Available: 1})
			},
			wantErr: entities.InsufficientStockError{SKUID: "sku-1", Requested: 2, Available: 1},
		},
		{
			name:    "order number collision is retried once",
			buyerID: "buyer-1",
			input:   input,
			mockBehavior: func(d deps) {
				happyPrechecks(d)
				d.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Once().Return(entities.ErrConflict)
				d.orders.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				d.orders.EXPECT().InsertItems(mock.Anything, mock.Anything).Return(nil)
				d.ledger.EXPECT().Decrement(mock.Anything, "sku-1", 2, mock.Anything).Return(3, nil)
				d.carts.EXPECT().ClearItems(mock.Anything, "cart-1").Return(nil)
				d.payments.EXPECT().InsertPayment(mock.Anything, mock.Anything).
					Return(entities.Payment{ID: "pay-1"}, nil)
				d.notifier.EXPECT().OrderCreated(mock.Anything).Return()
			},
		},
		{
			name:    "unknown shipping method",
			buyerID: "buyer-1",
			input: service.CheckoutInput{
				CartID:            "cart-1",
				ShippingAddressID: "addr-1",
				BillingAddressID:  "addr-1",
				ShippingMethod:    "teleport",
			},
			mockBehavior: func(d deps) {
				d.carts.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)
				d.catalog.EXPECT().GetAddress(mock.Anything, "addr-1").Return(entities.Address{}, "buyer-1", nil)
			},
			wantErr: entities.ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := deps{
				carts:    mocks.NewMockCartRepo(t),
				catalog:  mocks.NewMockCatalogReader(t),
				orders:   mocks.NewMockOrderRepo(t),
				payments: mocks.NewMockPaymentRepo(t),
				ledger:   mocks.NewMockLedger(t),
				notifier: mocks.NewMockNotifier(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				}).Maybe()

			tc.mockBehavior(d)

			svc := service.NewCheckoutService(logger, tx, d.carts, d.catalog, d.orders, d.payments, d.ledger, d.notifier, checkoutConfig())

			order, err := svc.Checkout(context.Background(), tc.buyerID, tc.input)

			if tc.wantErr != nil {
				var stockErr entities.InsufficientStockError
				var priceErr entities.PriceChangedError
				switch {
				case errors.As(tc.wantErr, &stockErr):
					var got entities.InsufficientStockError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, stockErr, got)
				case errors.As(tc.wantErr, &priceErr):
					var got entities.PriceChangedError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, priceErr.SKUID, got.SKUID)
				default:
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}

			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}
