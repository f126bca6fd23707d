package entities

import "time"

type Inventory struct {
	ID       string
	SKUID    string
	Location string
	Stock    int
}

// InventoryTransaction — запись append-only журнала, никогда не изменяется
// и не удаляется; сумма проводок по SKU воспроизводит текущий остаток
type InventoryTransaction struct {
	ID          string
	InventoryID string
	OrderID     string
	Quantity    int // со знаком: продажа < 0, возврат/отмена > 0
	Type        InventoryTxType
	Notes       string
	CreatedAt   time.Time
}

type LowStockItem struct {
	SKUID        string
	SKUCode      string
	CurrentStock int
	Threshold    int
}
