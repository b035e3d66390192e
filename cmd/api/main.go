package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/carrito-api/docs"
	"github.com/jhoicas/carrito-api/internal/application/cart"
	apporder "github.com/jhoicas/carrito-api/internal/application/order"
	"github.com/jhoicas/carrito-api/internal/application/usecase"
	"github.com/jhoicas/carrito-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/carrito-api/internal/infrastructure/pdf"
	"github.com/jhoicas/carrito-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/carrito-api/internal/interfaces/http"
	"github.com/jhoicas/carrito-api/pkg/config"
	"github.com/jhoicas/carrito-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Catálogo simulado: se genera una sola vez y vive mientras viva el proceso.
	itemRepo := memory.NewItemRepository()
	if err := itemRepo.Load(seed.Generate(cfg.Catalog.SeedCount, cfg.Catalog.Seed)); err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo simulado")
	}
	log.Info().Int("items", itemRepo.Count()).Msg("catálogo cargado")

	orderRepo := memory.NewOrderRepository()
	ledger := cart.NewLedger(itemRepo, orderRepo)

	itemUC := usecase.NewItemUseCase(itemRepo)
	cartUC := usecase.NewCartUseCase(ledger, itemRepo)
	receiptUC := apporder.NewReceiptUseCase(orderRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	docs.SwaggerInfo.Title = cfg.App.Name

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerFile,
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))
	app.Get("/openapi.json", httpRouter.OpenAPI)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "items": itemRepo.Count()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:    itemUC,
		CartUC:    cartUC,
		ReceiptUC: receiptUC,
		Logger:    log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
