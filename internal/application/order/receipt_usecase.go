package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/domain/entity"
	"github.com/jhoicas/carrito-api/internal/domain/repository"
)

// ReceiptUseCase consulta órdenes completadas y genera su comprobante.
type ReceiptUseCase struct {
	orders    repository.OrderRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orders repository.OrderRepository, generator ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, generator: generator}
}

// GetOrder devuelve la orden o domain.ErrNotFound.
func (uc *ReceiptUseCase) GetOrder(id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// DownloadReceiptPDF genera el PDF de la orden.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la orden no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, id string) ([]byte, string, error) {
	o, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, o)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("comprobante-%s.pdf", o.ID), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Color:     l.Color,
			Size:      string(l.Size),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal,
		})
	}
	return &dto.OrderResponse{ID: o.ID, Lines: lines, Total: o.Total, CreatedAt: o.CreatedAt}
}
