// Package analytics contiene los casos de uso de la serie de tendencia
// (kpis) y del resumen del tablero.
package analytics

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// TrendSource provee la serie diaria de muestras agregadas stock/demanda.
// La implementación de referencia es un generador sintético
// (infrastructure/trend); un despliegue real la sustituye por agregación
// de snapshots históricos del catálogo sin tocar a los consumidores.
type TrendSource interface {
	// Series devuelve un punto por día calendario, del más antiguo al más
	// reciente, terminando hoy. rangeToken: "7d" → 7 días, "14d" → 14,
	// cualquier otro valor → 30 (fallback permisivo, no error).
	Series(rangeToken string) []entity.TrendPoint
}
