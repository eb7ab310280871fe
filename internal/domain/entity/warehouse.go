package entity

// Warehouse representa una bodega física donde se almacena inventario.
// Code es la identidad (única e inmutable). La lista se carga desde la
// semilla al arrancar y no cambia durante la vida del proceso.
type Warehouse struct {
	Code    string
	Name    string
	City    string
	Country string
}
