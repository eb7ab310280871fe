package repository

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// ProductRepository acceso de lectura y mutación exclusiva sobre productos.
type ProductRepository interface {
	// List devuelve una copia de todos los productos en orden de semilla.
	List() []entity.Product

	// GetByID devuelve una copia del producto, o nil si no existe.
	GetByID(id string) *entity.Product

	// Apply localiza el producto y ejecuta fn sobre una copia de trabajo bajo
	// exclusión mutua. Si fn devuelve error no se publica ningún cambio; si
	// devuelve nil el resultado se publica como una unidad atómica. Devuelve
	// domain.ErrNotFound si el id no existe (fn no se ejecuta en ese caso).
	Apply(id string, fn func(p *entity.Product) error) (*entity.Product, error)
}
