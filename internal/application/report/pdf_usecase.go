package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// PDFUseCase arma el reporte de inventario: snapshot completo del catálogo
// más el resumen del tablero, renderizado por el generador inyectado.
type PDFUseCase struct {
	products  repository.ProductRepository
	generator InventoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(products repository.ProductRepository, generator InventoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{products: products, generator: generator}
}

// GenerateInventoryReport devuelve los bytes del PDF. Listado y resumen se
// derivan del mismo snapshot, así que el reporte es internamente coherente
// aunque haya mutaciones concurrentes.
func (uc *PDFUseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	products := uc.products.List()
	summary := analytics.Summarize(products)

	out, err := uc.generator.GenerateInventoryPDF(ctx, products, summary)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	return out, nil
}
