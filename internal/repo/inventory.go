package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type inventoryRepo struct {
	base
}

func NewInventoryRepo(db *sqlx.DB) *inventoryRepo {
	return &inventoryRepo{base: newBase(db)}
}

// LockBySKU блокирует все строки остатков SKU в порядке убывания запаса.
// Порядок детерминированный: списание всегда начинается с самого
// заполненного склада
func (r *inventoryRepo) LockBySKU(ctx context.Context, skuID string) ([]entities.Inventory, error) {
	query, args := r.qb.Select("id", "sku_id", "location", "stock").
		From("inventories").
		Where(sq.Eq{"sku_id": skuID}).
		OrderBy("stock DESC", "location ASC").
		Suffix("FOR UPDATE").
		MustSql()

	var rows []Inventory
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock inventories: %w", err)
	}

	result := make([]entities.Inventory, 0, len(rows))
	for _, row := range rows {
		result = append(result, InventoryToEntity(row))
	}
	return result, nil
}

func (r *inventoryRepo) SetStock(ctx context.Context, inventoryID string, stock int) error {
	query, args := r.qb.Update("inventories").
		Set("stock", stock).
		Where(sq.Eq{"id": inventoryID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	return nil
}

func (r *inventoryRepo) CreateLocation(ctx context.Context, skuID, location string) (entities.Inventory, error) {
	inv := Inventory{
		ID:       uuid.NewString(),
		SKUID:    skuID,
		Location: location,
		Stock:    0,
	}

	query, args := r.qb.Insert("inventories").
		Columns("id", "sku_id", "location", "stock").
		Values(inv.ID, inv.SKUID, inv.Location, inv.Stock).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Inventory{}, fmt.Errorf("failed to create inventory location: %w", err)
	}
	return InventoryToEntity(inv), nil
}

// AddTransaction пишет строку журнала. Журнал append-only: обновлений
// и удалений у этой таблицы нет нигде в кодовой базе
func (r *inventoryRepo) AddTransaction(ctx context.Context, tx entities.InventoryTransaction) error {
	query, args := r.qb.Insert("inventory_transactions").
		Columns("id", "inventory_id", "order_id", "quantity", "type", "notes", "created_at").
		Values(
			uuid.NewString(), tx.InventoryID, nullString(tx.OrderID),
			tx.Quantity, string(tx.Type), nullString(tx.Notes), time.Now(),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add inventory transaction: %w", err)
	}
	return nil
}

func (r *inventoryRepo) TotalStock(ctx context.Context, skuID string) (int, error) {
	query, args := r.qb.Select("COALESCE(SUM(stock), 0)").
		From("inventories").
		Where(sq.Eq{"sku_id": skuID}).
		MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum stock: %w", err)
	}
	return total, nil
}

func (r *inventoryRepo) ListBelowThreshold(ctx context.Context, threshold int) ([]entities.LowStockItem, error) {
	query, args := r.qb.Select(
		"s.id AS sku_id",
		"s.code AS sku_code",
		"COALESCE(SUM(i.stock), 0) AS total_stock").
		From("skus s").
		LeftJoin("inventories i ON i.sku_id = s.id").
		GroupBy("s.id", "s.code").
		Having("COALESCE(SUM(i.stock), 0) <= ?", threshold).
		OrderBy("total_stock ASC").
		MustSql()

	var rows []LowStockRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select low stock skus: %w", err)
	}

	items := make([]entities.LowStockItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.LowStockItem{
			SKUID:        row.SKUID,
			SKUCode:      nullStringToString(row.SKUCode),
			CurrentStock: row.Stock,
			Threshold:    threshold,
		})
	}
	return items, nil
}
