package entity

// Product representa un SKU rastreado en una bodega concreta.
// ID es la identidad (única e inmutable). WarehouseCode, Stock y Demand
// solo se modifican a través del servicio de mutaciones; Stock y Demand
// nunca pueden quedar negativos.
type Product struct {
	ID            string
	Name          string
	SKU           string // clave de búsqueda, no necesariamente única
	WarehouseCode string // debe referenciar siempre una bodega existente
	Stock         int
	Demand        int
}

// Status devuelve la clasificación derivada (no se almacena).
func (p Product) Status() Status {
	return Classify(p.Stock, p.Demand)
}
