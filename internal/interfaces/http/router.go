package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/Vending-api/internal/application/analytics"
	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/application/inventory"
	"github.com/jhoicas/Vending-api/internal/application/usecase"
)

// AppConfig parámetros del servidor HTTP.
type AppConfig struct {
	Name        string
	CORSOrigins string
	// SwaggerSpec documento OpenAPI; vacío = sin /docs.
	SwaggerSpec []byte
	Logger      zerolog.Logger
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	MachineUC    *usecase.MachineUseCase
	LedgerUC     *inventory.LedgerUseCase
	LowStockUC   *inventory.LowStockUseCase
	StockSheetUC *inventory.StockSheetUseCase
	MetricsUC    *appanalytics.MetricsUseCase
	Metrics      *Metrics
}

// NewApp construye la app fiber con middlewares, /health, /metrics, /docs y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	if deps.Metrics == nil {
		deps.Metrics = NewMetrics()
	}

	app.Use(recover.New())
	app.Use(deps.Metrics.Middleware(cfg.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Swagger UI: http://localhost:<port>/docs
	if len(cfg.SwaggerSpec) > 0 {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: cfg.SwaggerSpec,
			Path:        "docs",
			Title:       "Vending API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.Name})
	})
	app.Get("/metrics", deps.Metrics.Handler())

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.LowStockUC, deps.StockSheetUC, deps.Metrics)

	machines := api.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC)
	machines.Get("/", machineHandler.List)
	machines.Get("/:machine_id/inventory", inventoryHandler.ListByMachine)
	machines.Get("/:machine_id/inventory/pdf", inventoryHandler.StockSheetPDF)

	// Las rutas fijas van antes de /:inv_id.
	inv := api.Group("/inventory")
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Post("/restock", inventoryHandler.Restock)
	inv.Put("/:inv_id", inventoryHandler.SetQuantity)
	inv.Post("/:inv_id/decrement", inventoryHandler.Decrement)
	inv.Delete("/:inv_id", inventoryHandler.Delete)

	metrics := api.Group("/metrics")
	metricsHandler := NewMetricsHandler(deps.MetricsUC)
	metrics.Get("/", metricsHandler.GetMetrics)
	metrics.Get("/summary", metricsHandler.GetSummary)
	metrics.Get("/top-products", metricsHandler.TopProducts)
	metrics.Get("/revenue-trend", metricsHandler.RevenueTrend)
	metrics.Get("/machine-distribution", metricsHandler.MachineDistribution)
}
