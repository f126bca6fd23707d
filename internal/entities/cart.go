package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        string
	OwnerID   string // id покупателя или анонимный токен
	Currency  string
	CreatedAt time.Time

	Items []CartItem
}

type CartItem struct {
	ID      string
	CartID  string
	SKUID   string
	Qty     int
	PriceAt decimal.Decimal // снимок цены на момент добавления
	AddedAt time.Time
}

// Subtotal считается на лету, в базе не хранится
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Qty
	}
	return count
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.PriceAt.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// SKU — витрина каталога, ядро заказов её только читает
type SKU struct {
	ID         string
	ProductID  string
	StoreID    string
	Code       string
	Name       string
	Price      decimal.Decimal
	Currency   string
	Attributes map[string]string
}
