package repository

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// WarehouseRepository acceso de lectura sobre bodegas.
// Las bodegas son inmutables tras la carga de la semilla.
type WarehouseRepository interface {
	// List devuelve todas las bodegas en orden de semilla.
	List() []entity.Warehouse

	// GetByCode devuelve la bodega con ese código, o nil si no existe.
	GetByCode(code string) *entity.Warehouse
}
