package memory

import (
	"sync"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository órdenes completadas, vivas mientras viva el proceso.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

// NewOrderRepository construye el archivo vacío.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*entity.Order)}
}

// Save guarda una copia de la orden. Un id repetido es ErrDuplicate.
func (r *OrderRepository) Save(order *entity.Order) error {
	if order == nil || order.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrDuplicate
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

// GetByID devuelve una copia de la orden o domain.ErrNotFound.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(o), nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	return &cp
}
