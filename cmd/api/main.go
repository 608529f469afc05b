// @title        Vending API
// @version      1.0
// @description  Ledger de inventario por máquina expendedora y métricas del tablero.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/Vending-api/docs"
	appanalytics "github.com/jhoicas/Vending-api/internal/application/analytics"
	"github.com/jhoicas/Vending-api/internal/application/inventory"
	"github.com/jhoicas/Vending-api/internal/application/usecase"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
	"github.com/jhoicas/Vending-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Vending-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Vending-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Vending-api/internal/interfaces/http"
	"github.com/jhoicas/Vending-api/pkg/config"
	"github.com/jhoicas/Vending-api/pkg/logger"
	"github.com/jhoicas/Vending-api/pkg/telemetry"
)

// repos agrupa los repositorios del backend elegido.
type repos struct {
	products  repository.ProductRepository
	machines  repository.MachineRepository
	inventory repository.InventoryRepository
	analytics repository.AnalyticsRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, cfg.App.Name, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error().Err(err).Msg("cerrar trazas")
		}
	}()

	var r repos
	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		store := memory.NewSeeded()
		r = repos{store.Products(), store.Machines(), store.Inventory(), store.Analytics()}
		log.Warn().Msg("backend en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, postgres.MigrateUp); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		r = repos{
			products:  postgres.NewProductRepository(pool),
			machines:  postgres.NewMachineRepository(pool),
			inventory: postgres.NewInventoryRepository(pool),
			analytics: postgres.NewAnalyticsRepository(pool),
		}
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerSpec: []byte(docs.SwaggerInfo.ReadDoc()),
		Logger:      log.Component("http"),
	}, httpRouter.RouterDeps{
		ProductUC:    usecase.NewProductUseCase(r.products),
		MachineUC:    usecase.NewMachineUseCase(r.machines),
		LedgerUC:     inventory.NewLedgerUseCase(r.inventory),
		LowStockUC:   inventory.NewLowStockUseCase(r.inventory),
		StockSheetUC: inventory.NewStockSheetUseCase(r.machines, r.inventory, infrapdf.NewMarotoStockSheetGenerator()),
		MetricsUC:    appanalytics.NewMetricsUseCase(r.analytics),
		Metrics:      httpRouter.NewMetrics(),
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
