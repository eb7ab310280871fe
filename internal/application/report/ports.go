// Package report contiene el caso de uso de exportación del snapshot de
// inventario en PDF.
package report

import (
	"context"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
)

// InventoryPDFGenerator genera la representación PDF del snapshot de
// inventario. La implementación de referencia usa Maroto
// (infrastructure/report).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(
		ctx context.Context,
		products []entity.Product,
		summary *dto.DashboardSummaryDTO,
	) ([]byte, error)
}
