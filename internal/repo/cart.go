package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

func (r *cartRepo) GetCartByID(ctx context.Context, cartID string) (entities.Cart, error) {
	query, args := r.qb.Select("id", "owner_id", "currency", "created_at").
		From("carts").
		Where(sq.Eq{"id": cartID}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.cartItems(ctx, cart.ID)
	if err != nil {
		return entities.Cart{}, err
	}
	return CartToEntity(cart, items), nil
}

func (r *cartRepo) GetCartByOwner(ctx context.Context, ownerID string) (entities.Cart, error) {
	query, args := r.qb.Select("id", "owner_id", "currency", "created_at").
		From("carts").
		Where(sq.Eq{"owner_id": ownerID}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.cartItems(ctx, cart.ID)
	if err != nil {
		return entities.Cart{}, err
	}
	return CartToEntity(cart, items), nil
}

func (r *cartRepo) CreateCart(ctx context.Context, ownerID, currency string) (entities.Cart, error) {
	cart := Cart{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Currency:  currency,
		CreatedAt: time.Now(),
	}

	query, args := r.qb.Insert("carts").
		Columns("id", "owner_id", "currency", "created_at").
		Values(cart.ID, cart.OwnerID, cart.Currency, cart.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return CartToEntity(cart, nil), nil
}

func (r *cartRepo) GetItem(ctx context.Context, itemID string) (entities.CartItem, error) {
	query, args := r.qb.Select("id", "cart_id", "sku_id", "qty", "price_at", "added_at").
		From("cart_items").
		Where(sq.Eq{"id": itemID}).
		MustSql()

	var item CartItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

// UpsertItem добавляет позицию или суммирует количество по (cart_id, sku_id),
// снимок цены при этом обновляется
func (r *cartRepo) UpsertItem(ctx context.Context, cartID, skuID string, qty int, priceAt decimal.Decimal) (entities.CartItem, error) {
	query, args := r.qb.Insert("cart_items").
		Columns("id", "cart_id", "sku_id", "qty", "price_at", "added_at").
		Values(uuid.NewString(), cartID, skuID, qty, priceAt, time.Now()).
		Suffix(`ON CONFLICT (cart_id, sku_id) DO UPDATE
			SET qty = cart_items.qty + EXCLUDED.qty, price_at = EXCLUDED.price_at
			RETURNING id, cart_id, sku_id, qty, price_at, added_at`).
		MustSql()

	var item CartItem
	if err := r.getContext(ctx, &item, query, args...); err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

func (r *cartRepo) UpdateItemQty(ctx context.Context, itemID string, qty int) error {
	query, args := r.qb.Update("cart_items").
		Set("qty", qty).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepo) DeleteItem(ctx context.Context, itemID string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"id": itemID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *cartRepo) ClearItems(ctx context.Context, cartID string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (r *cartRepo) cartItems(ctx context.Context, cartID string) ([]CartItem, error) {
	query, args := r.qb.Select("id", "cart_id", "sku_id", "qty", "price_at", "added_at").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		OrderBy("added_at ASC").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	return items, nil
}
