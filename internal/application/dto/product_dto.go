package dto

// ProductQueryRequest filtros del listado de productos. Todos opcionales;
// se componen con AND. Search vacío o en blanco no filtra; Status fuera de
// Healthy/Low/Critical se ignora.
type ProductQueryRequest struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	Warehouse string `query:"warehouse"`
}

// UpdateDemandRequest entrada para ajustar la demanda de un producto.
// Demand es puntero para distinguir "ausente" de cero.
type UpdateDemandRequest struct {
	Demand *int `json:"demand"`
}

// TransferStockRequest entrada para mover stock entre bodegas.
type TransferStockRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Qty  *int   `json:"qty"`
}

// ProductResponse salida de un producto, con el estado derivado.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

// ProductListResponse listado filtrado completo (la paginación es asunto
// del consumidor, no de esta capa).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
