package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

// CartHandler maneja las peticiones HTTP del carrito compartido.
type CartHandler struct {
	uc  *usecase.CartUseCase
	log *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar el carrito
// @Tags         cart
// @Produce      json
// @Param        offset  query  int  false  "Offset"  default(0)
// @Param        limit   query  int  false  "Límite"  default(10)  minimum(1)  maximum(100)
// @Success      200  {object}  dto.CartListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar artículo al carrito (reserva stock)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "item_id y quantity (por defecto 1)"
// @Success      200   {object}  dto.CartMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/add [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar línea del carrito (libera la reserva)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveFromCartRequest  true  "item_id"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/remove [post]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var in dto.RemoveFromCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Remove(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "artículo eliminado del carrito"})
}

// Update godoc
// @Summary      Fijar la cantidad de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCartRequest  true  "item_id y quantity (>= 1)"
// @Success      200   {object}  dto.CartMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/update [post]
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Finalizar compra
// @Description  Suma las líneas a precio actual, vacía el carrito y no devuelve stock.
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, order, err := h.uc.Checkout()
	if err != nil {
		return respondError(c, err)
	}
	h.log.Info().
		Str("request_id", GetRequestID(c)).
		Str("order_id", order.ID).
		Str("total", order.Total.StringFixed(2)).
		Int("lines", len(order.Lines)).
		Int("units", order.Units()).
		Msg("checkout completado")
	return c.JSON(out)
}
