package memstore

import (
	"github.com/jhoicas/supplysight-api/internal/domain"
	"github.com/jhoicas/supplysight-api/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository sobre el Catalog.
type ProductRepository struct {
	cat *Catalog
}

// NewProductRepository construye el repositorio.
func NewProductRepository(cat *Catalog) *ProductRepository {
	return &ProductRepository{cat: cat}
}

// List devuelve una copia de todos los productos en orden de semilla.
// Los llamadores pueden retener o modificar el slice sin afectar al catálogo.
func (r *ProductRepository) List() []entity.Product {
	r.cat.mu.RLock()
	defer r.cat.mu.RUnlock()
	out := make([]entity.Product, len(r.cat.products))
	copy(out, r.cat.products)
	return out
}

// GetByID devuelve una copia del producto, o nil si no existe.
func (r *ProductRepository) GetByID(id string) *entity.Product {
	r.cat.mu.RLock()
	defer r.cat.mu.RUnlock()
	i, ok := r.cat.index[id]
	if !ok {
		return nil
	}
	p := r.cat.products[i]
	return &p
}

// Apply ejecuta fn sobre una copia de trabajo del producto bajo el candado
// exclusivo del catálogo. El estado solo se publica si fn devuelve nil, de
// modo que una validación fallida no deja efectos parciales. Las
// precondiciones que fn evalúa y la escritura final se observan como una
// sola unidad atómica frente a mutaciones concurrentes.
func (r *ProductRepository) Apply(id string, fn func(p *entity.Product) error) (*entity.Product, error) {
	r.cat.mu.Lock()
	defer r.cat.mu.Unlock()
	i, ok := r.cat.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	working := r.cat.products[i]
	if err := fn(&working); err != nil {
		return nil, err
	}
	r.cat.products[i] = working
	out := working
	return &out, nil
}
