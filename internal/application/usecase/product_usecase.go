package usecase

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// ProductUseCase consultas de solo lectura sobre el catálogo de productos:
// listado filtrado y detalle por ID.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Query aplica búsqueda y filtros sobre el listado completo, en orden de
// semilla. Los predicados se componen con AND y son conmutativos: el
// resultado no depende del orden de aplicación.
//
//   - Search: substring sin distinguir mayúsculas contra name, sku o id
//     (basta con que uno coincida). En blanco = sin filtro.
//   - Warehouse: igualdad exacta del código de bodega.
//   - Status: igualdad contra el estado derivado; un valor desconocido se
//     ignora en lugar de fallar.
func (uc *ProductUseCase) Query(in dto.ProductQueryRequest) *dto.ProductListResponse {
	products := uc.repo.List()

	search := strings.TrimSpace(in.Search)
	statusFilter, hasStatus := entity.ParseStatus(in.Status)

	// Case folding Unicode, no un simple ToLower: "ß" ~ "ss", etc.
	// Un cases.Caser mantiene estado interno, así que se crea por consulta.
	fold := cases.Fold()
	needle := fold.String(search)

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(fold, p, needle) {
			continue
		}
		if in.Warehouse != "" && p.WarehouseCode != in.Warehouse {
			continue
		}
		if hasStatus && p.Status() != statusFilter {
			continue
		}
		items = append(items, *toProductResponse(&p))
	}

	return &dto.ProductListResponse{Items: items, Total: len(items)}
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) *dto.ProductResponse {
	return toProductResponse(uc.repo.GetByID(id))
}

func matchesSearch(fold cases.Caser, p entity.Product, needle string) bool {
	return strings.Contains(fold.String(p.Name), needle) ||
		strings.Contains(fold.String(p.SKU), needle) ||
		strings.Contains(fold.String(p.ID), needle)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.WarehouseCode,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(p.Status()),
	}
}
