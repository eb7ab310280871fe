// Package trend implementa el TrendSource sintético de referencia: valores
// alrededor de líneas base fijas con ruido acotado. Sirve para poblar el
// gráfico mientras no exista agregación de snapshots históricos reales.
package trend

import (
	"math/rand"
	"time"

	"github.com/jhoicas/supplysight-api/internal/domain/entity"
)

// Config líneas base y amplitud del ruido del generador.
type Config struct {
	BaseStock    int // línea base del stock agregado
	BaseDemand   int // línea base de la demanda agregada
	StockJitter  int // ruido uniforme en [-StockJitter, StockJitter)
	DemandJitter int // ruido uniforme en [-DemandJitter, DemandJitter)
}

// DefaultConfig valores del sistema de referencia.
func DefaultConfig() Config {
	return Config{BaseStock: 1000, BaseDemand: 800, StockJitter: 100, DemandJitter: 75}
}

// SyntheticSource genera la serie bajo demanda. Sin estado mutable: el
// generador global de math/rand es seguro para uso concurrente.
type SyntheticSource struct {
	cfg Config
	now func() time.Time // inyectable en tests
}

// NewSyntheticSource construye el generador.
func NewSyntheticSource(cfg Config) *SyntheticSource {
	return &SyntheticSource{cfg: cfg, now: time.Now}
}

// Series implementa analytics.TrendSource: un punto por día, del más
// antiguo a hoy. Valores negativos se truncan a cero.
func (s *SyntheticSource) Series(rangeToken string) []entity.TrendPoint {
	days := 30
	switch rangeToken {
	case "7d":
		days = 7
	case "14d":
		days = 14
	}

	today := s.now()
	points := make([]entity.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		points = append(points, entity.TrendPoint{
			Date:   today.AddDate(0, 0, -i).Format("2006-01-02"),
			Stock:  max(0, s.cfg.BaseStock+jitter(s.cfg.StockJitter)),
			Demand: max(0, s.cfg.BaseDemand+jitter(s.cfg.DemandJitter)),
		})
	}
	return points
}

// jitter devuelve un entero uniforme en [-span, span).
func jitter(span int) int {
	if span <= 0 {
		return 0
	}
	return rand.Intn(2*span) - span
}
