package analytics

import (
	"github.com/jhoicas/supplysight-api/internal/application/dto"
)

// TrendUseCase expone la serie de tendencia a la capa de transporte.
type TrendUseCase struct {
	source TrendSource
}

// NewTrendUseCase construye el caso de uso.
func NewTrendUseCase(source TrendSource) *TrendUseCase {
	return &TrendUseCase{source: source}
}

// GetKPIs devuelve la serie para el rango pedido.
func (uc *TrendUseCase) GetKPIs(rangeToken string) []dto.TrendPointDTO {
	series := uc.source.Series(rangeToken)
	items := make([]dto.TrendPointDTO, 0, len(series))
	for _, p := range series {
		items = append(items, dto.TrendPointDTO{
			Date:   p.Date,
			Stock:  p.Stock,
			Demand: p.Demand,
		})
	}
	return items
}
