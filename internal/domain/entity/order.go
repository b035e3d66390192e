package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order resultado de un checkout. Las reservas pasan a venta definitiva.
type Order struct {
	ID        string
	Lines     []OrderLine
	Total     decimal.Decimal
	CreatedAt time.Time
}

// OrderLine foto de una línea del carrito al momento del checkout.
type OrderLine struct {
	ItemID    string
	Name      string
	Color     string
	Size      Size
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// Units total de unidades vendidas en la orden.
func (o *Order) Units() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}
