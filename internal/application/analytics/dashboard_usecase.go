package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase agrega el estado actual del catálogo para el tablero:
// totales de stock y demanda, fill rate y conteo por estado.
type DashboardUseCase struct {
	products repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products}
}

// GetSummary calcula el resumen sobre un snapshot del catálogo.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	return Summarize(uc.products.List())
}

// Summarize agrega un snapshot ya tomado; útil cuando el llamador necesita
// que listado y resumen salgan del mismo instante (p. ej. el reporte PDF).
//
// Fill rate = Σ min(stock, demanda) / Σ demanda × 100, redondeado a 2
// decimales. La demanda cubierta se acota por producto: el excedente de un
// SKU no compensa el faltante de otro. Con demanda total cero el fill rate
// es 100%.
func Summarize(products []entity.Product) *dto.DashboardSummaryDTO {
	var totalStock, totalDemand, covered int
	var counts dto.StatusCountsDTO
	for _, p := range products {
		totalStock += p.Stock
		totalDemand += p.Demand
		covered += min(p.Stock, p.Demand)

		switch p.Status() {
		case entity.StatusHealthy:
			counts.Healthy++
		case entity.StatusLow:
			counts.Low++
		case entity.StatusCritical:
			counts.Critical++
		}
	}

	fillRate := hundred
	if totalDemand > 0 {
		fillRate = decimal.NewFromInt(int64(covered)).
			Div(decimal.NewFromInt(int64(totalDemand))).
			Mul(hundred).
			Round(2)
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts: len(products),
		TotalStock:    totalStock,
		TotalDemand:   totalDemand,
		FillRatePct:   fillRate,
		ByStatus:      counts,
	}
}
