package http

import (
	"github.com/gofiber/fiber/v2"

	apporder "github.com/jhoicas/carrito-api/internal/application/order"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC    *usecase.ItemUseCase
	CartUC    *usecase.CartUseCase
	ReceiptUC *apporder.ReceiptUseCase
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))

	// Catálogo (solo lectura)
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)

	// Carrito compartido
	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC, deps.Logger)
	cartGroup.Get("/", cartHandler.List)
	cartGroup.Post("/add", cartHandler.Add)
	cartGroup.Post("/remove", cartHandler.Remove)
	cartGroup.Post("/update", cartHandler.Update)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Órdenes completadas
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.ReceiptUC)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.DownloadReceipt)
}
