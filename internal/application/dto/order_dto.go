package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineResponse línea de una orden completada.
type OrderLineResponse struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse orden completada.
type OrderResponse struct {
	ID        string              `json:"id"`
	Lines     []OrderLineResponse `json:"lines"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
}
