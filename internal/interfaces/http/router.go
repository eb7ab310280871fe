package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	"github.com/jhoicas/supplysight-api/internal/application/report"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	MutationUC  *usecase.MutationUseCase
	WarehouseUC *usecase.WarehouseUseCase
	TrendUC     *analytics.TrendUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products: consultas y mutaciones
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	mutationHandler := NewMutationHandler(deps.MutationUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/demand", mutationHandler.UpdateDemand)
	products.Post("/:id/transfer", mutationHandler.TransferStock)

	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Get("/warehouses", warehouseHandler.List)

	// Analytics: tendencia + resumen del tablero
	analyticsHandler := NewAnalyticsHandler(deps.TrendUC, deps.DashboardUC)
	api.Get("/kpis", analyticsHandler.GetKPIs)
	api.Get("/dashboard/summary", analyticsHandler.GetSummary)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory", reportHandler.GetInventoryReport)

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
}
