package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type CartRepo interface {
	GetCartByID(ctx context.Context, cartID string) (entities.Cart, error)
	GetCartByOwner(ctx context.Context, ownerID string) (entities.Cart, error)
	CreateCart(ctx context.Context, ownerID, currency string) (entities.Cart, error)
	GetItem(ctx context.Context, itemID string) (entities.CartItem, error)
	UpsertItem(ctx context.Context, cartID, skuID string, qty int, priceAt decimal.Decimal) (entities.CartItem, error)
	UpdateItemQty(ctx context.Context, itemID string, qty int) error
	DeleteItem(ctx context.Context, itemID string) error
	ClearItems(ctx context.Context, cartID string) error
}

type CatalogReader interface {
	GetSKU(ctx context.Context, skuID string) (entities.SKU, error)
	GetAddress(ctx context.Context, addressID string) (entities.Address, string, error)
}

type StockReader interface {
	TotalStock(ctx context.Context, skuID string) (int, error)
}

// cartService держит позиции со снимком цены на момент добавления.
// Итог и количество всегда вычисляются, в базе их нет
type cartService struct {
	logger  *slog.Logger
	repo    CartRepo
	catalog CatalogReader
	stock   StockReader
}

func NewCartService(logger *slog.Logger, repo CartRepo, catalog CatalogReader, stock StockReader) *cartService {
	return &cartService{
		logger:  logger.With(slog.String("service", "cart")),
		repo:    repo,
		catalog: catalog,
		stock:   stock,
	}
}

// AddItem лениво создает корзину при первом добавлении. Проверка остатка
// здесь только предварительная, авторитетная делается на checkout
func (s *cartService) AddItem(ctx context.Context, ownerID, skuID string, qty int) (entities.Cart, error) {
	if qty <= 0 {
		return entities.Cart{}, fmt.Errorf("qty must be positive: %w", entities.ErrInvalidAmount)
	}

	sku, err := s.catalog.GetSKU(ctx, skuID)
	if err != nil {
		return entities.Cart{}, err
	}

	available, err := s.stock.TotalStock(ctx, skuID)
	if err != nil {
		return entities.Cart{}, err
	}

	cart, err := s.repo.GetCartByOwner(ctx, ownerID)
	if errors.Is(err, entities.ErrCartNotFound) {
		cart, err = s.repo.CreateCart(ctx, ownerID, sku.Currency)
	}
	if err != nil {
		return entities.Cart{}, err
	}

	requested := qty
	for _, item := range cart.Items {
		if item.SKUID == skuID {
			requested += item.Qty
		}
	}
	if available < requested {
		return entities.Cart{}, entities.InsufficientStockError{SKUID: skuID, Requested: requested, Available: available}
	}

	if _, err := s.repo.UpsertItem(ctx, cart.ID, skuID, qty, sku.Price); err != nil {
		return entities.Cart{}, err
	}

	s.logger.DebugContext(ctx, "cart item added",
		slog.String("cart_id", cart.ID), slog.String("sku_id", skuID), slog.Int("qty", qty))
	return s.repo.GetCartByID(ctx, cart.ID)
}

// UpdateItem меняет количество, ноль удаляет позицию
func (s *cartService) UpdateItem(ctx context.Context, ownerID, itemID string, qty int) (entities.Cart, error) {
	if qty < 0 {
		return entities.Cart{}, fmt.Errorf("qty must not be negative: %w", entities.ErrInvalidAmount)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return entities.Cart{}, err
	}

	cart, err := s.repo.GetCartByID(ctx, item.CartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.OwnerID != ownerID {
		return entities.Cart{}, entities.ErrForbidden
	}

	if qty == 0 {
		err = s.repo.DeleteItem(ctx, itemID)
	} else {
		available, stockErr := s.stock.TotalStock(ctx, item.SKUID)
		if stockErr != nil {
			return entities.Cart{}, stockErr
		}
		if available < qty {
			return entities.Cart{}, entities.InsufficientStockError{SKUID: item.SKUID, Requested: qty, Available: available}
		}
		err = s.repo.UpdateItemQty(ctx, itemID, qty)
	}
	if err != nil {
		return entities.Cart{}, err
	}

	return s.repo.GetCartByID(ctx, cart.ID)
}

func (s *cartService) RemoveItem(ctx context.Context, ownerID, itemID string) (entities.Cart, error) {
	return s.UpdateItem(ctx, ownerID, itemID, 0)
}

// GetCart возвращает пустую корзину, если владелец еще ничего не добавлял
func (s *cartService) GetCart(ctx context.Context, ownerID string) (entities.Cart, error) {
	cart, err := s.repo.GetCartByOwner(ctx, ownerID)
	if errors.Is(err, entities.ErrCartNotFound) {
		return entities.Cart{OwnerID: ownerID}, nil
	}
	return cart, err
}
