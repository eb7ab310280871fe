package memstore

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// WarehouseRepository implementa repository.WarehouseRepository sobre el
// Catalog. Las bodegas son inmutables tras la semilla, así que las lecturas
// no toman el candado; eso permite consultarlas desde dentro de un Apply
// sin riesgo de interbloqueo.
type WarehouseRepository struct {
	cat *Catalog
}

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(cat *Catalog) *WarehouseRepository {
	return &WarehouseRepository{cat: cat}
}

// List devuelve todas las bodegas en orden de semilla.
func (r *WarehouseRepository) List() []entity.Warehouse {
	out := make([]entity.Warehouse, len(r.cat.warehouses))
	copy(out, r.cat.warehouses)
	return out
}

// GetByCode devuelve la bodega con ese código, o nil si no existe.
func (r *WarehouseRepository) GetByCode(code string) *entity.Warehouse {
	i, ok := r.cat.whIndex[code]
	if !ok {
		return nil
	}
	w := r.cat.warehouses[i]
	return &w
}
