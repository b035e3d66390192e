package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carrito-api/internal/application/dto"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones HTTP del catálogo.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos del catálogo
// @Tags         items
// @Produce      json
// @Param        name       query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Param        color      query  string  false  "Color exacto (sin distinguir mayúsculas)"
// @Param        size       query  string  false  "Talla"  Enums(XS, S, M, L, XL, XXL)
// @Param        max_price  query  string  false  "Precio máximo (inclusivo)"
// @Param        offset     query  int     false  "Offset"  default(0)
// @Param        limit      query  int     false  "Límite"  default(10)  minimum(1)  maximum(100)
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return respondError(c, err)
	}
	req := dto.ListItemsRequest{
		Name:     c.Query("name"),
		Color:    c.Query("color"),
		Size:     c.Query("size"),
		MaxPrice: c.Query("max_price"),
	}
	filter, err := req.Filter()
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
