// Package cart implementa el carrito compartido y su acoplamiento con el stock del catálogo.
//
// Cada operación (Add, Remove, Update, Checkout) es una unidad lógica: el ajuste de stock
// y el cambio de línea se aplican juntos o no se aplica ninguno. Todas se serializan con
// un único lock del Ledger, de modo que la secuencia leer-validar-ajustar-confirmar no se
// intercala entre peticiones concurrentes.
package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// Ledger libro de reservas del carrito (singleton del proceso, inyectado en los handlers).
type Ledger struct {
	mu     sync.Mutex
	items  repository.ItemRepository
	orders repository.OrderRepository
	lines  []*entity.CartLine
	now    func() time.Time
	newID  func() string
}

// NewLedger construye el carrito vacío sobre el catálogo y el archivo de órdenes.
func NewLedger(items repository.ItemRepository, orders repository.OrderRepository) *Ledger {
	return &Ledger{
		items:  items,
		orders: orders,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Add reserva quantity unidades de itemID. Si ya hay línea, la incrementa.
func (l *Ledger) Add(itemID string, quantity int) (*entity.CartLine, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.Stock < quantity {
		return nil, domain.ErrInsufficientStock
	}
	if _, err := l.items.AdjustStock(itemID, -quantity); err != nil {
		return nil, fmt.Errorf("reservar %s: %w", itemID, err)
	}

	if line := l.find(itemID); line != nil {
		line.Quantity += quantity
		cp := *line
		return &cp, nil
	}
	line := &entity.CartLine{ItemID: itemID, Quantity: quantity}
	l.lines = append(l.lines, line)
	cp := *line
	return &cp, nil
}

// Remove elimina la línea completa y devuelve toda su cantidad al stock.
func (l *Ledger) Remove(itemID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(itemID)
	if idx < 0 {
		return domain.ErrNotInCart
	}
	if _, err := l.items.AdjustStock(itemID, l.lines[idx].Quantity); err != nil {
		return fmt.Errorf("liberar %s: %w", itemID, err)
	}
	l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
	return nil
}

// Update fija la cantidad absoluta de una línea existente (quantity >= 1).
// delta > 0 reserva más stock; delta < 0 lo devuelve y nunca falla por stock.
func (l *Ledger) Update(itemID string, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.items.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	line := l.find(itemID)
	if line == nil {
		return nil, domain.ErrNotInCart
	}

	delta := quantity - line.Quantity
	if delta != 0 {
		if item.Stock < delta {
			return nil, domain.ErrInsufficientStock
		}
		if _, err := l.items.AdjustStock(itemID, -delta); err != nil {
			return nil, fmt.Errorf("ajustar reserva %s: %w", itemID, err)
		}
	}
	line.Quantity = quantity
	cp := *line
	return &cp, nil
}

// List devuelve una página de líneas unidas con la foto actual de cada artículo.
func (l *Ledger) List(limit, offset int) ([]entity.CartLineView, int, error) {
	if limit < 0 || offset < 0 {
		return nil, 0, domain.ErrInvalidInput
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	total := len(l.lines)
	if offset >= total {
		return []entity.CartLineView{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]entity.CartLineView, 0, end-offset)
	for _, line := range l.lines[offset:end] {
		item, err := l.items.GetByID(line.ItemID)
		if err != nil {
			return nil, 0, fmt.Errorf("línea %s: %w", line.ItemID, err)
		}
		out = append(out, entity.CartLineView{Item: *item, Quantity: line.Quantity})
	}
	return out, total, nil
}

// Checkout suma las líneas a precio actual, archiva la orden y vacía el carrito.
// El stock NO se restaura: la reserva se convierte en venta.
func (l *Ledger) Checkout() (*entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := &entity.Order{
		Lines: make([]entity.OrderLine, 0, len(l.lines)),
		Total: decimal.Zero,
	}
	for _, line := range l.lines {
		item, err := l.items.GetByID(line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("checkout %s: %w", line.ItemID, err)
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.Lines = append(order.Lines, entity.OrderLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Color:     item.Color,
			Size:      item.Size,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		order.Total = order.Total.Add(subtotal)
	}
	order.ID = l.newID()
	order.CreatedAt = l.now()

	if err := l.orders.Save(order); err != nil {
		return nil, fmt.Errorf("archivar orden: %w", err)
	}
	l.lines = nil
	return order, nil
}

// Quantity cantidad reservada de itemID (0 si no hay línea).
func (l *Ledger) Quantity(itemID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if line := l.find(itemID); line != nil {
		return line.Quantity
	}
	return 0
}

// Len número de líneas del carrito.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func (l *Ledger) find(itemID string) *entity.CartLine {
	if idx := l.indexOf(itemID); idx >= 0 {
		return l.lines[idx]
	}
	return nil
}

func (l *Ledger) indexOf(itemID string) int {
	for i, line := range l.lines {
		if line.ItemID == itemID {
			return i
		}
	}
	return -1
}
