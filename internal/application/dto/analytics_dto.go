package dto

import "github.com/shopspring/decimal"

// TrendPointDTO una muestra diaria de la serie stock/demanda.
type TrendPointDTO struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// StatusCountsDTO productos por estado derivado.
type StatusCountsDTO struct {
	Healthy  int `json:"healthy"`
	Low      int `json:"low"`
	Critical int `json:"critical"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts int             `json:"total_products"`
	TotalStock    int             `json:"total_stock"`
	TotalDemand   int             `json:"total_demand"`
	FillRatePct   decimal.Decimal `json:"fill_rate_pct"` // Σ min(stock, demanda) / Σ demanda × 100
	ByStatus      StatusCountsDTO `json:"by_status"`
}
