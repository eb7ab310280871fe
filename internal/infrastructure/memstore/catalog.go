// Package memstore implementa el Catalog Store en memoria: la única fuente
// de verdad para bodegas y productos durante la vida del proceso. La
// durabilidad no es un objetivo; el estado se reconstruye desde la semilla
// en cada arranque.
//
// El Catalog cumple el papel del pool de conexiones en una implementación
// con base de datos: los repositorios se construyen sobre él y comparten
// su exclusión mutua.
package memstore

import (
	"sync"

	"github.com/jhoicas/supplysight-api/internal/domain/entity"
)

// Catalog contiene el estado compartido y su candado. Las lecturas de
// productos toman RLock y devuelven copias; las mutaciones toman Lock y se
// publican como una unidad. Las bodegas nunca cambian tras la semilla, así
// que se leen sin bloqueo.
type Catalog struct {
	mu         sync.RWMutex
	products   []entity.Product // orden de semilla, estable para listados
	index      map[string]int   // id -> posición en products
	warehouses []entity.Warehouse
	whIndex    map[string]int // code -> posición en warehouses
}

// NewCatalog construye el catálogo a partir de la semilla.
func NewCatalog(seed Seed) *Catalog {
	c := &Catalog{
		products:   make([]entity.Product, len(seed.Products)),
		index:      make(map[string]int, len(seed.Products)),
		warehouses: make([]entity.Warehouse, len(seed.Warehouses)),
		whIndex:    make(map[string]int, len(seed.Warehouses)),
	}
	copy(c.warehouses, seed.Warehouses)
	for i, w := range c.warehouses {
		c.whIndex[w.Code] = i
	}
	copy(c.products, seed.Products)
	for i, p := range c.products {
		c.index[p.ID] = i
	}
	return c
}

// ProductCount devuelve el número de productos cargados.
func (c *Catalog) ProductCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// WarehouseCount devuelve el número de bodegas cargadas.
func (c *Catalog) WarehouseCount() int {
	return len(c.warehouses)
}
