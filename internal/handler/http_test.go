package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type handlerMocks struct {
	cart      *mocks.MockCartService
	checkout  *mocks.MockCheckoutService
	orders    *mocks.MockOrderService
	statuses  *mocks.MockStatusService
	payments  *mocks.MockPaymentService
	inventory *mocks.MockInventoryService
	returns   *mocks.MockReturnsService
	shipments *mocks.MockShipmentService
}

func newTestRouter(t *testing.T) (handlerMocks, chi.Router) {
	m := handlerMocks{
		cart:      mocks.NewMockCartService(t),
		checkout:  mocks.NewMockCheckoutService(t),
		orders:    mocks.NewMockOrderService(t),
		statuses:  mocks.NewMockStatusService(t),
		payments:  mocks.NewMockPaymentService(t),
		inventory: mocks.NewMockInventoryService(t),
		returns:   mocks.NewMockReturnsService(t),
		shipments: mocks.NewMockShipmentService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, testSecret,
		m.cart, m.checkout, m.orders, m.statuses, m.payments, m.inventory, m.returns, m.shipments)

	r := chi.NewRouter()
	h.Init(r)
	return m, r
}

func signToken(t *testing.T, sub, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r chi.Router, method, path, token string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr.Result()
}

func readBody(t *testing.T, res *http.Response) string {
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(data)
}

func TestHTTPHandler_Cart(t *testing.T) {
	t.Run("anonymous token is enough for the cart", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.cart.EXPECT().GetCart(mock.Anything, "anon:tok-1").
			Return(entities.Cart{OwnerID: "anon:tok-1", Currency: "USD"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("X-Anonymous-Token", "tok-1")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		res := rr.Result()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"success":true`)
	})

	t.Run("no identity at all", func(t *testing.T) {
		_, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodGet, "/cart", "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"UNAUTHORIZED"`)
	})

	t.Run("add item validates the body", func(t *testing.T) {
		_, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodPost, "/cart/items", signToken(t, "buyer-1", "buyer"),
			map[string]any{"sku_id": "", "quantity": 0})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"VALIDATION_ERROR"`)
	})

	t.Run("add item over the stock", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.cart.EXPECT().AddItem(mock.Anything, "buyer-1", "sku-1", 5).
			Return(entities.Cart{}, entities.InsufficientStockError{SKUID: "sku-1", Requested: 5, Available: 2})

		res := doJSON(t, r, http.MethodPost, "/cart/items", signToken(t, "buyer-1", "buyer"),
			map[string]any{"sku_id": "sku-1", "quantity": 5})
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"INSUFFICIENT_STOCK"`)
	})
}

func TestHTTPHandler_Checkout(t *testing.T) {
	body := map[string]any{
		"cart_id":             "cart-1",
		"shipping_address_id": "addr-1",
		"billing_address_id":  "addr-1",
		"shipping_method":     "standard",
		"payment_provider":    "stripe",
		"payment_method":      "card",
	}

	t.Run("OK", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.checkout.EXPECT().Checkout(mock.Anything, "buyer-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.CheckoutInput) (entities.Order, error) {
				assert.Equal(t, "cart-1", in.CartID)
				assert.Equal(t, "standard", in.ShippingMethod)
				return entities.Order{
					ID:          "order-1",
					OrderNumber: "ORD-20260801-12345",
					Status:      entities.OrderStatusPending,
					Total:       decimal.RequireFromString("27.99"),
					Currency:    "USD",
				}, nil
			})

		res := doJSON(t, r, http.MethodPost, "/checkout", signToken(t, "buyer-1", "buyer"), body)
		assert.Equal(t, http.StatusCreated, res.StatusCode)

		raw := readBody(t, res)
		assert.Contains(t, raw, `"order_number":"ORD-20260801-12345"`)
		assert.Contains(t, raw, `"total":"27.99"`)
	})

	t.Run("price changed", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.checkout.EXPECT().Checkout(mock.Anything, "buyer-1", mock.Anything).
			Return(entities.Order{}, entities.PriceChangedError{
				SKUID: "sku-1",
				Was:   decimal.RequireFromString("10.00"),
				Now:   decimal.RequireFromString("12.00"),
			})

		res := doJSON(t, r, http.MethodPost, "/checkout", signToken(t, "buyer-1", "buyer"), body)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"PRICE_CHANGED"`)
	})

	t.Run("unknown shipping method fails validation", func(t *testing.T) {
		_, r := newTestRouter(t)

		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["shipping_method"] = "teleport"

		res := doJSON(t, r, http.MethodPost, "/checkout", signToken(t, "buyer-1", "buyer"), bad)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("requires a real token", func(t *testing.T) {
		_, r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set("X-Anonymous-Token", "tok-1")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	order := entities.Order{ID: "order-1", BuyerID: "buyer-1", Status: entities.OrderStatusPaid}

	testCases := []struct {
		name       string
		sub, role  string
		wantStatus int
	}{
		{name: "owner sees the order", sub: "buyer-1", role: "buyer", wantStatus: http.StatusOK},
		{name: "staff sees any order", sub: "staff-1", role: "staff", wantStatus: http.StatusOK},
		{name: "stranger is rejected", sub: "buyer-2", role: "buyer", wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := newTestRouter(t)
			m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil)

			res := doJSON(t, r, http.MethodGet, "/orders/order-1", signToken(t, tc.sub, tc.role), nil)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}

	t.Run("not found", func(t *testing.T) {
		m, r := newTestRouter(t)
		m.orders.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound)

		res := doJSON(t, r, http.MethodGet, "/orders/missing", signToken(t, "buyer-1", "buyer"), nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"NOT_FOUND"`)
	})
}

func TestHTTPHandler_TransitionOrder(t *testing.T) {
	t.Run("buyer role is not allowed", func(t *testing.T) {
		_, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodPost, "/orders/order-1/status", signToken(t, "buyer-1", "buyer"),
			map[string]any{"status": "CANCELLED"})
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("OK", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.TransitionInput) (service.TransitionResult, error) {
				assert.Equal(t, entities.OrderStatusCancelled, in.To)
				assert.Equal(t, "staff-1", in.ActorID)
				return service.TransitionResult{
					Order:   entities.Order{ID: "order-1", Status: entities.OrderStatusCancelled},
					History: entities.OrderHistory{ID: "hist-1", FromStatus: entities.OrderStatusPaid, ToStatus: entities.OrderStatusCancelled},
				}, nil
			})

		res := doJSON(t, r, http.MethodPost, "/orders/order-1/status", signToken(t, "staff-1", "staff"),
			map[string]any{"status": "CANCELLED", "notes": "fraud"})
		assert.Equal(t, http.StatusOK, res.StatusCode)

		raw := readBody(t, res)
		assert.Contains(t, raw, `"previous_status":"PAID"`)
		assert.Contains(t, raw, `"status":"CANCELLED"`)
	})

	t.Run("invalid edge", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.statuses.EXPECT().Transition(mock.Anything, "order-1", mock.Anything).
			Return(service.TransitionResult{}, entities.InvalidTransitionError{
				From: entities.OrderStatusDelivered,
				To:   entities.OrderStatusPending,
			})

		res := doJSON(t, r, http.MethodPost, "/orders/order-1/status", signToken(t, "staff-1", "staff"),
			map[string]any{"status": "PENDING"})
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"INVALID_TRANSITION"`)
	})

	t.Run("unknown status name", func(t *testing.T) {
		_, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodPost, "/orders/order-1/status", signToken(t, "staff-1", "staff"),
			map[string]any{"status": "TELEPORTED"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_RefundPayment(t *testing.T) {
	t.Run("same idempotency key twice yields the same refund", func(t *testing.T) {
		m, r := newTestRouter(t)

		refund := entities.Refund{
			ID:     "ref-1",
			Amount: decimal.RequireFromString("30.00"),
			Status: entities.RefundStatusCompleted,
		}
		m.payments.EXPECT().Refund(mock.Anything, "pay-1", mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, in service.RefundInput) (entities.Refund, error) {
				assert.Equal(t, "key-1", in.IdempotencyKey)
				assert.Equal(t, "staff-1", in.ProcessedBy)
				return refund, nil
			}).Times(2)

		body := map[string]any{"amount": "30.00", "reason": "damaged", "idempotency_key": "key-1"}
		token := signToken(t, "staff-1", "staff")

		first := doJSON(t, r, http.MethodPost, "/payments/pay-1/refund", token, body)
		second := doJSON(t, r, http.MethodPost, "/payments/pay-1/refund", token, body)

		assert.Equal(t, http.StatusOK, first.StatusCode)
		assert.Equal(t, http.StatusOK, second.StatusCode)
		assert.Equal(t, readBody(t, first), readBody(t, second))
	})

	t.Run("amount above the remainder", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.payments.EXPECT().Refund(mock.Anything, "pay-1", mock.Anything).
			Return(entities.Refund{}, entities.ErrInvalidAmount)

		res := doJSON(t, r, http.MethodPost, "/payments/pay-1/refund", signToken(t, "staff-1", "staff"),
			map[string]any{"amount": "500.00", "reason": "damaged"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"INVALID_AMOUNT"`)
	})

	t.Run("garbage amount", func(t *testing.T) {
		_, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodPost, "/payments/pay-1/refund", signToken(t, "staff-1", "staff"),
			map[string]any{"amount": "many", "reason": "damaged"})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_Inventory(t *testing.T) {
	t.Run("low stock with a custom threshold", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.inventory.EXPECT().ListBelowThreshold(mock.Anything, 5).
			Return([]entities.LowStockItem{{SKUID: "sku-1", SKUCode: "MUG-1", CurrentStock: 2, Threshold: 5}}, nil)

		res := doJSON(t, r, http.MethodGet, "/inventory/low-stock?threshold=5", signToken(t, "staff-1", "staff"), nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, readBody(t, res), `"sku_code":"MUG-1"`)
	})

	t.Run("negative threshold", func(t *testing.T) {
		_, r := newTestRouter(t)

		res := doJSON(t, r, http.MethodGet, "/inventory/low-stock?threshold=-1", signToken(t, "staff-1", "staff"), nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("adjust below zero", func(t *testing.T) {
		m, r := newTestRouter(t)

		m.inventory.EXPECT().Adjust(mock.Anything, "sku-1", "msk", -100, mock.Anything).
			Return(0, entities.ErrInvalidAmount)

		res := doJSON(t, r, http.MethodPost, "/inventory/sku-1/adjust", signToken(t, "staff-1", "staff"),
			map[string]any{"location": "msk", "delta": -100})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
