package usecase

import (
	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/domain"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
	"github.com/jhoicas/supplysight-api/internal/domain/repository"
)

// MutationUseCase las dos operaciones que cambian estado: ajuste de demanda
// y traslado de stock. Ambas pasan por ProductRepository.Apply, de modo que
// las precondiciones y el efecto se observan como una unidad atómica; una
// mutación fallida no aplica ningún cambio.
type MutationUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewMutationUseCase construye el caso de uso.
func NewMutationUseCase(products repository.ProductRepository, warehouses repository.WarehouseRepository) *MutationUseCase {
	return &MutationUseCase{products: products, warehouses: warehouses}
}

// UpdateDemand fija la demanda del producto, dejando el resto intacto.
// Falla con ErrInvalidInput si demand es negativa (antes de tocar el
// catálogo) y con ErrNotFound si el id no existe.
func (uc *MutationUseCase) UpdateDemand(id string, demand int) (*dto.ProductResponse, error) {
	if demand < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.Apply(id, func(p *entity.Product) error {
		p.Demand = demand
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// TransferStock descuenta qty del stock del producto y lo reubica en la
// bodega destino, como una sola unidad atómica.
//
// Orden de precondiciones (contractual, no incidental):
//  1. qty > 0                       → si no, ErrInvalidInput
//  2. el producto existe            → si no, ErrNotFound
//  3. está en la bodega origen      → si no, ErrConflict
//  4. stock suficiente              → si no, ErrInsufficientStock
//
// Además la bodega destino debe existir (ErrInvalidInput); ese chequeo va
// después de los contractuales para no alterar su orden ni sus tipos de
// fallo, y mantiene el invariante de que todo producto referencia una
// bodega conocida.
func (uc *MutationUseCase) TransferStock(id, from, to string, qty int) (*dto.ProductResponse, error) {
	if qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.Apply(id, func(p *entity.Product) error {
		if p.WarehouseCode != from {
			return domain.ErrConflict
		}
		if p.Stock < qty {
			return domain.ErrInsufficientStock
		}
		if uc.warehouses.GetByCode(to) == nil {
			return domain.ErrInvalidInput
		}
		p.Stock -= qty
		p.WarehouseCode = to
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}
