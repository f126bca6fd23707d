package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/trm"
)

type InventoryRepo interface {
	LockBySKU(ctx context.Context, skuID string) ([]entities.Inventory, error)
	SetStock(ctx context.Context, inventoryID string, stock int) error
	CreateLocation(ctx context.Context, skuID, location string) (entities.Inventory, error)
	AddTransaction(ctx context.Context, tx entities.InventoryTransaction) error
	TotalStock(ctx context.Context, skuID string) (int, error)
	ListBelowThreshold(ctx context.Context, threshold int) ([]entities.LowStockItem, error)
}

const defaultLocation = "default"

// inventoryService — складская книга: каждая мутация остатка пишет ровно
// одну проводку с тем же знаковым количеством, сумма проводок по SKU
// воспроизводит текущий остаток
type inventoryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      InventoryRepo
}

func NewInventoryService(logger *slog.Logger, txManager trm.Manager, repo InventoryRepo) *inventoryService {
	return &inventoryService{
		logger:    logger.With(slog.String("service", "inventory")),
		txManager: txManager,
		repo:      repo,
	}
}

// Decrement списывает qty по SKU внутри транзакции вызывающего.
// Резервирование и списание — один атомарный шаг, отдельной фазы удержания нет.
// Локации обходятся в порядке убывания остатка, одно списание может
// затронуть несколько складов. Возвращает суммарный остаток после списания
func (s *inventoryService) Decrement(ctx context.Context, skuID string, qty int, orderID string) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("decrement qty must be positive: %w", entities.ErrInvalidAmount)
	}

	rows, err := s.repo.LockBySKU(ctx, skuID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, row := range rows {
		total += row.Stock
	}
	if total < qty {
		return 0, entities.InsufficientStockError{SKUID: skuID, Requested: qty, Available: total}
	}

	remaining := qty
	for _, row := range rows {
		if remaining == 0 {
			break
		}
		take := min(remaining, row.Stock)
		if take == 0 {
			continue
		}

		if err := s.repo.SetStock(ctx, row.ID, row.Stock-take); err != nil {
			return 0, err
		}
		if err := s.repo.AddTransaction(ctx, entities.InventoryTransaction{
			InventoryID: row.ID,
			OrderID:     orderID,
			Quantity:    -take,
			Type:        entities.InventoryTxSale,
			Notes:       fmt.Sprintf("sale for order %s", orderID),
		}); err != nil {
			return 0, err
		}
		remaining -= take
	}

	s.logger.DebugContext(ctx, "stock decremented",
		slog.String("sku_id", skuID), slog.Int("qty", qty), slog.String("order_id", orderID))
	return total - qty, nil
}

// Increment — компенсирующее пополнение при отмене, возврате или ручной
// корректировке. Всегда успешно: остаток добавляется на самый заполненный
// склад, при отсутствии строк создается локация по умолчанию
func (s *inventoryService) Increment(ctx context.Context, skuID string, qty int, orderID string, reason entities.InventoryTxType, notes string) error {
	if qty <= 0 {
		return fmt.Errorf("increment qty must be positive: %w", entities.ErrInvalidAmount)
	}

	rows, err := s.repo.LockBySKU(ctx, skuID)
	if err != nil {
		return err
	}

	var target entities.Inventory
	if len(rows) == 0 {
		target, err = s.repo.CreateLocation(ctx, skuID, defaultLocation)
		if err != nil {
			return err
		}
	} else {
		target = rows[0]
	}

	if err := s.repo.SetStock(ctx, target.ID, target.Stock+qty); err != nil {
		return err
	}
	if err := s.repo.AddTransaction(ctx, entities.InventoryTransaction{
		InventoryID: target.ID,
		OrderID:     orderID,
		Quantity:    qty,
		Type:        reason,
		Notes:       notes,
	}); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "stock incremented",
		slog.String("sku_id", skuID), slog.Int("qty", qty), slog.String("reason", string(reason)))
	return nil
}

// Adjust — ручная корректировка конкретной локации, в минус не уводит
func (s *inventoryService) Adjust(ctx context.Context, skuID, location string, delta int, notes string) (int, error) {
	if delta == 0 {
		return 0, fmt.Errorf("adjustment delta must not be zero: %w", entities.ErrInvalidAmount)
	}

	var stock int
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rows, err := s.repo.LockBySKU(ctx, skuID)
		if err != nil {
			return err
		}

		var target entities.Inventory
		found := false
		for _, row := range rows {
			if row.Location == location {
				target = row
				found = true
				break
			}
		}
		if !found {
			if delta < 0 {
				return fmt.Errorf("no stock at location %s: %w", location, entities.ErrInvalidAmount)
			}
			target, err = s.repo.CreateLocation(ctx, skuID, location)
			if err != nil {
				return err
			}
		}

		stock = target.Stock + delta
		if stock < 0 {
			return fmt.Errorf("adjustment below zero (stock %d, delta %d): %w", target.Stock, delta, entities.ErrInvalidAmount)
		}

		if err := s.repo.SetStock(ctx, target.ID, stock); err != nil {
			return err
		}
		return s.repo.AddTransaction(ctx, entities.InventoryTransaction{
			InventoryID: target.ID,
			Quantity:    delta,
			Type:        entities.InventoryTxAdjustment,
			Notes:       notes,
		})
	})
	if err != nil {
		return 0, err
	}
	return stock, nil
}

func (s *inventoryService) TotalStock(ctx context.Context, skuID string) (int, error) {
	return s.repo.TotalStock(ctx, skuID)
}

// ListBelowThreshold — SKU с суммарным остатком не выше порога, только чтение
func (s *inventoryService) ListBelowThreshold(ctx context.Context, threshold int) ([]entities.LowStockItem, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("threshold must not be negative: %w", entities.ErrInvalidAmount)
	}
	return s.repo.ListBelowThreshold(ctx, threshold)
}
