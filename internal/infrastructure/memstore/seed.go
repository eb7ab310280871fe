package memstore

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// Seed datos iniciales del catálogo. Las bodegas y los productos se cargan
// una sola vez al arrancar; después solo el servicio de mutaciones toca los
// productos.
type Seed struct {
	Warehouses []entity.Warehouse
	Products   []entity.Product
}

// DefaultSeed devuelve la semilla de referencia del sistema.
func DefaultSeed() Seed {
	return Seed{
		Warehouses: []entity.Warehouse{
			{Code: "BLR-A", Name: "Bangalore Central", City: "Bangalore", Country: "India"},
			{Code: "PNQ-C", Name: "Pune North", City: "Pune", Country: "India"},
			{Code: "DEL-B", Name: "Delhi West", City: "Delhi", Country: "India"},
		},
		Products: []entity.Product{
			{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
			{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
			{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", WarehouseCode: "PNQ-C", Stock: 80, Demand: 80},
			{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", WarehouseCode: "DEL-B", Stock: 24, Demand: 120},
		},
	}
}
