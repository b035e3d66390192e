package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// ListItemsRequest query de GET /api/items.
type ListItemsRequest struct {
	PageRequest
	Name     string `query:"name"`
	Color    string `query:"color"`
	Size     string `query:"size"`
	MaxPrice string `query:"max_price"`
}

// Filter convierte la query en un filtro tipado. Talla fuera del enum o precio no numérico es ErrInvalidInput.
func (r ListItemsRequest) Filter() (entity.ItemFilter, error) {
	f := entity.ItemFilter{Name: r.Name, Color: r.Color}
	if r.Size != "" {
		sz, ok := entity.ParseSize(r.Size)
		if !ok {
			return entity.ItemFilter{}, domain.ErrInvalidInput
		}
		f.Size = sz
	}
	if r.MaxPrice != "" {
		p, err := decimal.NewFromString(r.MaxPrice)
		if err != nil || p.IsNegative() {
			return entity.ItemFilter{}, domain.ErrInvalidInput
		}
		f.MaxPrice = &p
	}
	return f, nil
}

// ItemResponse salida de un artículo del catálogo.
type ItemResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToItemResponse mapea la entidad al DTO.
func ToItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:    it.ID,
		Name:  it.Name,
		Color: it.Color,
		Size:  string(it.Size),
		Price: it.Price,
		Stock: it.Stock,
	}
}
