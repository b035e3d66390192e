package order

import (
	"context"

	"github.com/jhoicas/carrito-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera el comprobante PDF de una orden completada.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}
