package dto

import "github.com/shopspring/decimal"

// AddToCartRequest body para POST /api/cart/add. Quantity omitido equivale a 1.
type AddToCartRequest struct {
	ItemID   string `json:"item_id"`
	Quantity *int   `json:"quantity,omitempty"`
}

// UpdateCartRequest body para POST /api/cart/update.
type UpdateCartRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// RemoveFromCartRequest body para POST /api/cart/remove.
type RemoveFromCartRequest struct {
	ItemID string `json:"item_id"`
}

// CartLineResponse línea del carrito con la foto actual del artículo.
type CartLineResponse struct {
	Item     ItemResponse `json:"item"`
	Quantity int          `json:"quantity"`
}

// CartListResponse página de líneas del carrito.
type CartListResponse struct {
	Items []CartLineResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CartMutationResponse resultado de add/update.
type CartMutationResponse struct {
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	Available int    `json:"available"`
}

// CheckoutResponse resultado de POST /api/cart/checkout.
type CheckoutResponse struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}
