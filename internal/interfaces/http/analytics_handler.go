package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
)

// AnalyticsHandler maneja la serie de tendencia y el resumen del tablero.
type AnalyticsHandler struct {
	trend     *analytics.TrendUseCase
	dashboard *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(trend *analytics.TrendUseCase, dashboard *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{trend: trend, dashboard: dashboard}
}

// GetKPIs godoc
// @Summary      Serie diaria de stock/demanda agregados
// @Tags         analytics
// @Produce      json
// @Param        range  query  string  false  "7d | 14d | 30d (otro valor equivale a 30d)"
// @Success      200  {array}  dto.TrendPointDTO
// @Router       /api/kpis [get]
func (h *AnalyticsHandler) GetKPIs(c *fiber.Ctx) error {
	return c.JSON(h.trend.GetKPIs(c.Query("range")))
}

// GetSummary godoc
// @Summary      Resumen del tablero: totales, fill rate y conteo por estado
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.dashboard.GetSummary())
}
