package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	appreport "github.com/jhoicas/supplysight-api/internal/application/report"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/memstore"
	infrareport "github.com/jhoicas/supplysight-api/internal/infrastructure/report"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/trend"
	httpRouter "github.com/jhoicas/supplysight-api/internal/interfaces/http"
	"github.com/jhoicas/supplysight-api/pkg/config"
	"github.com/jhoicas/supplysight-api/pkg/logger"
	"github.com/jhoicas/supplysight-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Catálogo en memoria: el estado vive lo que viva el proceso.
	catalog := memstore.NewCatalog(memstore.DefaultSeed())
	productRepo := memstore.NewProductRepository(catalog)
	warehouseRepo := memstore.NewWarehouseRepository(catalog)
	log.Info().
		Int("products", catalog.ProductCount()).
		Int("warehouses", catalog.WarehouseCount()).
		Msg("semilla cargada")

	productUC := usecase.NewProductUseCase(productRepo)
	mutationUC := usecase.NewMutationUseCase(productRepo, warehouseRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)

	trendSource := trend.NewSyntheticSource(trend.Config{
		BaseStock:    cfg.Trend.BaseStock,
		BaseDemand:   cfg.Trend.BaseDemand,
		StockJitter:  cfg.Trend.StockJitter,
		DemandJitter: cfg.Trend.DemandJitter,
	})
	trendUC := analytics.NewTrendUseCase(trendSource)
	dashboardUC := analytics.NewDashboardUseCase(productRepo)

	pdfGenerator := infrareport.NewMarotoReportGenerator()
	reportUC := appreport.NewPDFUseCase(productRepo, pdfGenerator)

	srvMetrics := metrics.New("api")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.Metrics(srvMetrics))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SupplySight API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		MutationUC:  mutationUC,
		WarehouseUC: warehouseUC,
		TrendUC:     trendUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
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
