package repository

import "github.com/jhoicas/carrito-api/internal/domain/entity"

// OrderRepository archivo de órdenes completadas.
type OrderRepository interface {
	Save(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
}
