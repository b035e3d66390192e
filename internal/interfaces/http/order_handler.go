package http

import (
	"github.com/gofiber/fiber/v2"

	apporder "github.com/jhoicas/carrito-api/internal/application/order"
)

// OrderHandler consulta de órdenes completadas y su comprobante.
type OrderHandler struct {
	uc *apporder.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *apporder.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener orden completada
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadReceipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) DownloadReceipt(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.DownloadReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
