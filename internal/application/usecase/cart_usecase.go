package usecase

import (
	"github.com/jhoicas/carrito-api/internal/application/cart"
	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/domain"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// CartUseCase adapta el Ledger a los DTOs HTTP. Solo expone operaciones compuestas;
// nunca un ajuste de stock suelto.
type CartUseCase struct {
	ledger *cart.Ledger
	items  repository.ItemRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(ledger *cart.Ledger, items repository.ItemRepository) *CartUseCase {
	return &CartUseCase{ledger: ledger, items: items}
}

// Add reserva stock para el artículo. Quantity nil equivale a 1.
func (uc *CartUseCase) Add(in dto.AddToCartRequest) (*dto.CartMutationResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	qty := 1
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	line, err := uc.ledger.Add(in.ItemID, qty)
	if err != nil {
		return nil, err
	}
	return uc.mutation(line)
}

// Update fija la cantidad absoluta de una línea.
func (uc *CartUseCase) Update(in dto.UpdateCartRequest) (*dto.CartMutationResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	line, err := uc.ledger.Update(in.ItemID, in.Quantity)
	if err != nil {
		return nil, err
	}
	return uc.mutation(line)
}

// Remove elimina la línea y libera su reserva.
func (uc *CartUseCase) Remove(in dto.RemoveFromCartRequest) error {
	if in.ItemID == "" {
		return domain.ErrInvalidInput
	}
	return uc.ledger.Remove(in.ItemID)
}

// List página del carrito.
func (uc *CartUseCase) List(page dto.Page) (*dto.CartListResponse, error) {
	views, total, err := uc.ledger.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartLineResponse, 0, len(views))
	for i := range views {
		items = append(items, dto.CartLineResponse{
			Item:     dto.ToItemResponse(&views[i].Item),
			Quantity: views[i].Quantity,
		})
	}
	return &dto.CartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Checkout finaliza la compra. Devuelve también la orden para logging del handler.
func (uc *CartUseCase) Checkout() (*dto.CheckoutResponse, *entity.Order, error) {
	order, err := uc.ledger.Checkout()
	if err != nil {
		return nil, nil, err
	}
	return &dto.CheckoutResponse{OrderID: order.ID, Total: order.Total}, order, nil
}

// mutation arma la respuesta con el stock disponible tras la operación.
// La lectura ocurre fuera del lock del Ledger: es informativa.
func (uc *CartUseCase) mutation(line *entity.CartLine) (*dto.CartMutationResponse, error) {
	it, err := uc.items.GetByID(line.ItemID)
	if err != nil {
		return nil, err
	}
	return &dto.CartMutationResponse{ItemID: line.ItemID, Quantity: line.Quantity, Available: it.Stock}, nil
}
