package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartDeps struct {
	repo    *mocks.MockCartRepo
	catalog *mocks.MockCatalogReader
	stock   *mocks.MockStockReader
}

func newCartService(t *testing.T) (cartDeps, interface {
	AddItem(ctx context.Context, ownerID, skuID string, qty int) (entities.Cart, error)
	UpdateItem(ctx context.Context, ownerID, itemID string, qty int) (entities.Cart, error)
	RemoveItem(ctx context.Context, ownerID, itemID string) (entities.Cart, error)
	GetCart(ctx context.Context, ownerID string) (entities.Cart, error)
}) {
	d := cartDeps{
		repo:    mocks.NewMockCartRepo(t),
		catalog: mocks.NewMockCatalogReader(t),
		stock:   mocks.NewMockStockReader(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return d, service.NewCartService(logger, d.repo, d.catalog, d.stock)
}

func TestCartService_AddItem(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	sku := entities.SKU{ID: "sku-1", Price: price, Currency: "USD"}

	t.Run("first add creates the cart", func(t *testing.T) {
		d, svc := newCartService(t)

		d.catalog.EXPECT().GetSKU(mock.Anything, "sku-1").Return(sku, nil)
		d.stock.EXPECT().TotalStock(mock.Anything, "sku-1").Return(5, nil)
		d.repo.EXPECT().GetCartByOwner(mock.Anything, "buyer-1").
			Return(entities.Cart{}, entities.ErrCartNotFound)
		d.repo.EXPECT().CreateCart(mock.Anything, "buyer-1", "USD").
			Return(entities.Cart{ID: "cart-1", OwnerID: "buyer-1", Currency: "USD"}, nil)
		d.repo.EXPECT().UpsertItem(mock.Anything, "cart-1", "sku-1", 2, price).
			Return(entities.CartItem{ID: "item-1"}, nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").
			Return(entities.Cart{
				ID:      "cart-1",
				OwnerID: "buyer-1",
				Items:   []entities.CartItem{{ID: "item-1", SKUID: "sku-1", Qty: 2, PriceAt: price}},
			}, nil)

		cart, err := svc.AddItem(context.Background(), "buyer-1", "sku-1", 2)
		require.NoError(t, err)
		assert.Equal(t, "cart-1", cart.ID)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Qty)
	})

	t.Run("stock check counts the quantity already in the cart", func(t *testing.T) {
		d, svc := newCartService(t)

		d.catalog.EXPECT().GetSKU(mock.Anything, "sku-1").Return(sku, nil)
		d.stock.EXPECT().TotalStock(mock.Anything, "sku-1").Return(5, nil)
		d.repo.EXPECT().GetCartByOwner(mock.Anything, "buyer-1").
			Return(entities.Cart{
				ID:      "cart-1",
				OwnerID: "buyer-1",
				Items:   []entities.CartItem{{ID: "item-1", SKUID: "sku-1", Qty: 3, PriceAt: price}},
			}, nil)

		_, err := svc.AddItem(context.Background(), "buyer-1", "sku-1", 3)

		var stockErr entities.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)
	})

	t.Run("unknown sku", func(t *testing.T) {
		d, svc := newCartService(t)

		d.catalog.EXPECT().GetSKU(mock.Anything, "sku-missing").
			Return(entities.SKU{}, entities.ErrSKUNotFound)

		_, err := svc.AddItem(context.Background(), "buyer-1", "sku-missing", 1)
		assert.ErrorIs(t, err, entities.ErrSKUNotFound)
	})

	t.Run("non positive qty", func(t *testing.T) {
		_, svc := newCartService(t)
		_, err := svc.AddItem(context.Background(), "buyer-1", "sku-1", 0)
		assert.ErrorIs(t, err, entities.ErrInvalidAmount)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	item := entities.CartItem{ID: "item-1", CartID: "cart-1", SKUID: "sku-1", Qty: 2}
	cart := entities.Cart{ID: "cart-1", OwnerID: "buyer-1", Items: []entities.CartItem{item}}

	t.Run("qty change", func(t *testing.T) {
		d, svc := newCartService(t)

		d.repo.EXPECT().GetItem(mock.Anything, "item-1").Return(item, nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil).Once()
		d.stock.EXPECT().TotalStock(mock.Anything, "sku-1").Return(10, nil)
		d.repo.EXPECT().UpdateItemQty(mock.Anything, "item-1", 5).Return(nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil).Once()

		_, err := svc.UpdateItem(context.Background(), "buyer-1", "item-1", 5)
		assert.NoError(t, err)
	})

	t.Run("zero qty deletes the line", func(t *testing.T) {
		d, svc := newCartService(t)

		d.repo.EXPECT().GetItem(mock.Anything, "item-1").Return(item, nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil).Once()
		d.repo.EXPECT().DeleteItem(mock.Anything, "item-1").Return(nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").
			Return(entities.Cart{ID: "cart-1", OwnerID: "buyer-1"}, nil).Once()

		updated, err := svc.UpdateItem(context.Background(), "buyer-1", "item-1", 0)
		require.NoError(t, err)
		assert.Empty(t, updated.Items)
	})

	t.Run("foreign cart", func(t *testing.T) {
		d, svc := newCartService(t)

		d.repo.EXPECT().GetItem(mock.Anything, "item-1").Return(item, nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)

		_, err := svc.UpdateItem(context.Background(), "intruder", "item-1", 5)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("not enough stock for the new qty", func(t *testing.T) {
		d, svc := newCartService(t)

		d.repo.EXPECT().GetItem(mock.Anything, "item-1").Return(item, nil)
		d.repo.EXPECT().GetCartByID(mock.Anything, "cart-1").Return(cart, nil)
		d.stock.EXPECT().TotalStock(mock.Anything, "sku-1").Return(3, nil)

		_, err := svc.UpdateItem(context.Background(), "buyer-1", "item-1", 4)

		var stockErr entities.InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
	})
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("existing cart", func(t *testing.T) {
		d, svc := newCartService(t)

		d.repo.EXPECT().GetCartByOwner(mock.Anything, "buyer-1").
			Return(entities.Cart{ID: "cart-1", OwnerID: "buyer-1"}, nil)

		cart, err := svc.GetCart(context.Background(), "buyer-1")
		require.NoError(t, err)
		assert.Equal(t, "cart-1", cart.ID)
	})

	t.Run("no cart yet means an empty one", func(t *testing.T) {
		d, svc := newCartService(t)

		d.repo.EXPECT().GetCartByOwner(mock.Anything, "anon:tok-1").
			Return(entities.Cart{}, entities.ErrCartNotFound)

		cart, err := svc.GetCart(context.Background(), "anon:tok-1")
		require.NoError(t, err)
		assert.Equal(t, "anon:tok-1", cart.OwnerID)
		assert.Empty(t, cart.Items)
	})
}
