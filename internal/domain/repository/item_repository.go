package repository

import "github.com/jhoicas/carrito-api/internal/domain/entity"

// ItemRepository define el puerto del catálogo (DIP).
// AdjustStock es el único mutador de Stock.
type ItemRepository interface {
	// GetByID devuelve una copia del artículo o domain.ErrNotFound.
	GetByID(id string) (*entity.Item, error)
	// List aplica los filtros (AND) y pagina; total es el conteo filtrado antes de paginar.
	List(filter entity.ItemFilter, limit, offset int) (items []*entity.Item, total int, err error)
	// AdjustStock suma delta al stock de forma atómica. Falla sin cambios con
	// domain.ErrNotFound o domain.ErrInsufficientStock si el resultado sería negativo.
	AdjustStock(id string, delta int) (*entity.Item, error)
	Count() int
}
