package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// catalogRepo читает данные внешних коллабораторов: каталог SKU и адресную
// книгу. Ядро заказов их не изменяет
type catalogRepo struct {
	base
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{base: newBase(db)}
}

func (r *catalogRepo) GetSKU(ctx context.Context, skuID string) (entities.SKU, error) {
	query, args := r.qb.Select(
		"id", "product_id", "store_id", "code", "name",
		"price_amount", "price_currency", "attributes").
		From("skus").
		Where(sq.Eq{"id": skuID}).
		MustSql()

	var sku SKU
	err := r.getContext(ctx, &sku, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.SKU{}, entities.ErrSKUNotFound
	}
	if err != nil {
		return entities.SKU{}, fmt.Errorf("failed to get sku: %w", err)
	}
	return SKUToEntity(sku), nil
}

// GetAddress возвращает адрес и id владельца для проверки принадлежности
func (r *catalogRepo) GetAddress(ctx context.Context, addressID string) (entities.Address, string, error) {
	query, args := r.qb.Select(
		"id", "user_id", "name", "street", "street2",
		"city", "state", "country", "postal_code", "phone").
		From("addresses").
		Where(sq.Eq{"id": addressID}).
		MustSql()

	var addr Address
	err := r.getContext(ctx, &addr, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, "", entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, "", fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(addr), addr.UserID, nil
}
