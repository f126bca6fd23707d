package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const defaultLowStockThreshold = 10

type CartService interface {
	AddItem(ctx context.Context, ownerID, skuID string, qty int) (entities.Cart, error)
	UpdateItem(ctx context.Context, ownerID, itemID string, qty int) (entities.Cart, error)
	RemoveItem(ctx context.Context, ownerID, itemID string) (entities.Cart, error)
	GetCart(ctx context.Context, ownerID string) (entities.Cart, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, buyerID string, in service.CheckoutInput) (entities.Order, error)
}

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID string) ([]entities.Order, error)
	ListHistory(ctx context.Context, orderID string) ([]entities.OrderHistory, error)
}

type StatusService interface {
	Transition(ctx context.Context, orderID string, in service.TransitionInput) (service.TransitionResult, error)
}

type PaymentService interface {
	Authorize(ctx context.Context, paymentID, providerRef string) (entities.Payment, error)
	Capture(ctx context.Context, paymentID string) (entities.Payment, error)
	Refund(ctx context.Context, paymentID string, in service.RefundInput) (entities.Refund, error)
}

type InventoryService interface {
	Adjust(ctx context.Context, skuID, location string, delta int, notes string) (int, error)
	ListBelowThreshold(ctx context.Context, threshold int) ([]entities.LowStockItem, error)
}

type ReturnsService interface {
	RequestReturn(ctx context.Context, buyerID, orderItemID string, qty int, reason string) (entities.ReturnRequest, error)
	ApproveReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	RejectReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error)
	CompleteReturn(ctx context.Context, returnID, actorID string) (entities.ReturnRequest, error)
	GetReturn(ctx context.Context, returnID string) (entities.ReturnRequest, error)
}

type ShipmentService interface {
	CreateShipment(ctx context.Context, orderID, carrier, trackingCode, actorID string) (entities.Shipment, error)
	MarkShipped(ctx context.Context, shipmentID, actorID string) (entities.Shipment, error)
	MarkDelivered(ctx context.Context, shipmentID, actorID string) (entities.Shipment, error)
	GetShipment(ctx context.Context, shipmentID string) (entities.Shipment, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	jwtSecret string

	cart      CartService
	checkout  CheckoutService
	orders    OrderService
	statuses  StatusService
	payments  PaymentService
	inventory InventoryService
	returns   ReturnsService
	shipments ShipmentService
}

func NewHTTPHandler(
	logger *slog.Logger,
	jwtSecret string,
	cart CartService,
	checkout CheckoutService,
	orders OrderService,
	statuses StatusService,
	payments PaymentService,
	inventory InventoryService,
	returns ReturnsService,
	shipments ShipmentService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		jwtSecret: jwtSecret,
		cart:      cart,
		checkout:  checkout,
		orders:    orders,
		statuses:  statuses,
		payments:  payments,
		inventory: inventory,
		returns:   returns,
		shipments: shipments,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	// корзина доступна и до логина, по анонимному токену
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthOptional(h.jwtSecret))
		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Patch("/cart/items/{item_id}", h.UpdateCartItem)
		r.Delete("/cart/items/{item_id}", h.RemoveCartItem)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.jwtSecret))
		r.Post("/checkout", h.Checkout)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Get("/orders/{order_id}/history", h.GetOrderHistory)
		r.Post("/returns", h.RequestReturn)
		r.Get("/returns/{return_id}", h.GetReturn)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.jwtSecret), middleware.RequireRole("staff", "admin"))
		r.Post("/orders/{order_id}/status", h.TransitionOrder)
		r.Post("/payments/{payment_id}/authorize", h.AuthorizePayment)
		r.Post("/payments/{payment_id}/capture", h.CapturePayment)
		r.Post("/payments/{payment_id}/refund", h.RefundPayment)
		r.Get("/inventory/low-stock", h.ListLowStock)
		r.Post("/inventory/{sku_id}/adjust", h.AdjustStock)
		r.Post("/returns/{return_id}/approve", h.ApproveReturn)
		r.Post("/returns/{return_id}/reject", h.RejectReturn)
		r.Post("/returns/{return_id}/complete", h.CompleteReturn)
		r.Post("/shipments", h.CreateShipment)
		r.Get("/shipments/{shipment_id}", h.GetShipment)
		r.Post("/shipments/{shipment_id}/shipped", h.MarkShipped)
		r.Post("/shipments/{shipment_id}/delivered", h.MarkDelivered)
	})
}

// Корзина

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	cart, err := h.cart.GetCart(r.Context(), p.UserID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	var req AddCartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.cart.AddItem(r.Context(), p.UserID, req.SKUID, req.Quantity)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	itemID := chi.URLParam(r, "item_id")

	var req UpdateCartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.cart.UpdateItem(r.Context(), p.UserID, itemID, req.Quantity)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, CartEntityToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	cart, err := h.cart.RemoveItem(r.Context(), p.UserID, chi.URLParam(r, "item_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, CartEntityToJSON(cart), http.StatusOK)
}

// Оформление заказа

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	order, err := h.checkout.Checkout(r.Context(), p.UserID, service.CheckoutInput{
		CartID:            req.CartID,
		ShippingAddressID: req.ShippingAddressID,
		BillingAddressID:  req.BillingAddressID,
		ShippingMethod:    req.ShippingMethod,
		PaymentProvider:   req.PaymentProvider,
		PaymentMethod:     req.PaymentMethod,
		Notes:             req.Notes,
	})
	if err != nil {
		checkoutsTotal.WithLabelValues("error").Inc()
		h.writeDomainError(r.Context(), w, err)
		return
	}
	checkoutsTotal.WithLabelValues("ok").Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())

	utils.WriteSuccess(w, CheckoutResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      string(order.Status),
		Total:       order.Total.StringFixed(2),
		Currency:    order.Currency,
	}, http.StatusCreated)
}

// Заказы

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	order, err := h.orders.GetOrderByID(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	if !canSeeOrder(p, order) {
		h.writeDomainError(r.Context(), w, entities.ErrForbidden)
		return
	}
	utils.WriteSuccess(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	orders, err := h.orders.ListOrdersByBuyer(r.Context(), p.UserID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	utils.WriteSuccess(w, out, http.StatusOK)
}

func (h *HTTPHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrderByID(r.Context(), orderID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	if !canSeeOrder(p, order) {
		h.writeDomainError(r.Context(), w, entities.ErrForbidden)
		return
	}

	history, err := h.orders.ListHistory(r.Context(), orderID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]HistoryEntry, 0, len(history))
	for _, entry := range history {
		out = append(out, HistoryEntityToJSON(entry))
	}
	utils.WriteSuccess(w, out, http.StatusOK)
}

func (h *HTTPHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	orderID := chi.URLParam(r, "order_id")

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	to := entities.OrderStatus(req.Status)
	if !to.Valid() {
		utils.WriteError(w, "VALIDATION_ERROR", "unknown order status", http.StatusBadRequest)
		return
	}

	result, err := h.statuses.Transition(r.Context(), orderID, service.TransitionInput{
		To:             to,
		ActorID:        p.UserID,
		Notes:          req.Notes,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	resp := TransitionResponse{
		PreviousStatus: string(result.History.FromStatus),
		Status:         string(result.Order.Status),
		HistoryEntryID: result.History.ID,
	}
	if result.NoOp {
		resp.PreviousStatus = string(result.Order.Status)
	}
	statusTransitionsTotal.WithLabelValues(string(result.Order.Status)).Inc()
	utils.WriteSuccess(w, resp, http.StatusOK)
}

// Платежи

func (h *HTTPHandler) AuthorizePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "payment_id")

	var req AuthorizeRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	payment, err := h.payments.Authorize(r.Context(), paymentID, req.ProviderRef)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, PaymentEntityToJSON(payment), http.StatusOK)
}

func (h *HTTPHandler) CapturePayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.payments.Capture(r.Context(), chi.URLParam(r, "payment_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	resp := CaptureResponse{
		Status:         string(payment.Status),
		CapturedAmount: payment.Amount.StringFixed(2),
	}
	if !payment.PaidAt.IsZero() {
		t := payment.PaidAt
		resp.CapturedAt = &t
	}
	utils.WriteSuccess(w, resp, http.StatusOK)
}

func (h *HTTPHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	paymentID := chi.URLParam(r, "payment_id")

	var req RefundRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	amount := decimal.Zero
	if req.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			utils.WriteError(w, "VALIDATION_ERROR", "invalid amount", http.StatusBadRequest)
			return
		}
	}

	refund, err := h.payments.Refund(r.Context(), paymentID, service.RefundInput{
		Amount:         amount,
		Reason:         req.Reason,
		IdempotencyKey: req.IdempotencyKey,
		ProcessedBy:    p.UserID,
	})
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteSuccess(w, RefundResponse{
		Status:         string(refund.Status),
		RefundedAmount: refund.Amount.StringFixed(2),
		RefundedAt:     refund.ProcessedAt,
	}, http.StatusOK)
}

// Склад

func (h *HTTPHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := defaultLowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.WriteError(w, "VALIDATION_ERROR", "invalid threshold", http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	items, err := h.inventory.ListBelowThreshold(r.Context(), threshold)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]LowStockItem, 0, len(items))
	for _, item := range items {
		out = append(out, LowStockItem{
			SKUID:        item.SKUID,
			SKUCode:      item.SKUCode,
			CurrentStock: item.CurrentStock,
			Threshold:    item.Threshold,
		})
	}
	utils.WriteSuccess(w, out, http.StatusOK)
}

func (h *HTTPHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	skuID := chi.URLParam(r, "sku_id")

	var req AdjustStockRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	notes := req.Notes
	if notes == "" {
		notes = "manual adjustment by " + p.UserID
	}

	stock, err := h.inventory.Adjust(r.Context(), skuID, req.Location, req.Delta, notes)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, map[string]any{"sku_id": skuID, "location": req.Location, "stock": stock}, http.StatusOK)
}

// Возвраты

func (h *HTTPHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	var req CreateReturnRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	ret, err := h.returns.RequestReturn(r.Context(), p.UserID, req.OrderItemID, req.Quantity, req.Reason)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ReturnEntityToJSON(ret), http.StatusCreated)
}

func (h *HTTPHandler) GetReturn(w http.ResponseWriter, r *http.Request) {
	ret, err := h.returns.GetReturn(r.Context(), chi.URLParam(r, "return_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ReturnEntityToJSON(ret), http.StatusOK)
}

func (h *HTTPHandler) ApproveReturn(w http.ResponseWriter, r *http.Request) {
	ret, err := h.returns.ApproveReturn(r.Context(), chi.URLParam(r, "return_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ReturnEntityToJSON(ret), http.StatusOK)
}

func (h *HTTPHandler) RejectReturn(w http.ResponseWriter, r *http.Request) {
	ret, err := h.returns.RejectReturn(r.Context(), chi.URLParam(r, "return_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ReturnEntityToJSON(ret), http.StatusOK)
}

func (h *HTTPHandler) CompleteReturn(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	ret, err := h.returns.CompleteReturn(r.Context(), chi.URLParam(r, "return_id"), p.UserID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ReturnEntityToJSON(ret), http.StatusOK)
}

// Отправления

func (h *HTTPHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	var req CreateShipmentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "VALIDATION_ERROR", "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	shipment, err := h.shipments.CreateShipment(r.Context(), req.OrderID, req.Carrier, req.TrackingCode, p.UserID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ShipmentEntityToJSON(shipment), http.StatusCreated)
}

func (h *HTTPHandler) GetShipment(w http.ResponseWriter, r *http.Request) {
	shipment, err := h.shipments.GetShipment(r.Context(), chi.URLParam(r, "shipment_id"))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

func (h *HTTPHandler) MarkShipped(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	shipment, err := h.shipments.MarkShipped(r.Context(), chi.URLParam(r, "shipment_id"), p.UserID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

func (h *HTTPHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())

	shipment, err := h.shipments.MarkDelivered(r.Context(), chi.URLParam(r, "shipment_id"), p.UserID)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}
	utils.WriteSuccess(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

func canSeeOrder(p middleware.Principal, order entities.Order) bool {
	return order.BuyerID == p.UserID || p.Role == "staff" || p.Role == "admin"
}

// writeDomainError переводит доменные ошибки в коды конверта,
// все остальное прячется за INTERNAL_ERROR
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var stockErr entities.InsufficientStockError
	var transitionErr entities.InvalidTransitionError
	var paymentTransitionErr entities.InvalidPaymentTransitionError
	var priceErr entities.PriceChangedError

	switch {
	case errors.As(err, &stockErr):
		utils.WriteError(w, "INSUFFICIENT_STOCK", stockErr.Error(), http.StatusConflict)
	case errors.As(err, &transitionErr):
		utils.WriteError(w, "INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &paymentTransitionErr):
		utils.WriteError(w, "INVALID_TRANSITION", paymentTransitionErr.Error(), http.StatusConflict)
	case errors.As(err, &priceErr):
		utils.WriteError(w, "PRICE_CHANGED", priceErr.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrCartNotFound),
		errors.Is(err, entities.ErrCartItemNotFound),
		errors.Is(err, entities.ErrSKUNotFound),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrPaymentNotFound),
		errors.Is(err, entities.ErrRefundNotFound),
		errors.Is(err, entities.ErrReturnNotFound),
		errors.Is(err, entities.ErrShipmentNotFound),
		errors.Is(err, entities.ErrAddressNotFound):
		utils.WriteError(w, "NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrCartEmpty):
		utils.WriteError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidAmount):
		utils.WriteError(w, "INVALID_AMOUNT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "FORBIDDEN", "access denied", http.StatusForbidden)
	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "UNAUTHORIZED", "missing or invalid token", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrShipmentExists), errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, "CONFLICT", err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
