package entity

// TrendPoint es una muestra agregada de stock y demanda para un día
// calendario. Es efímero: se regenera en cada consulta.
type TrendPoint struct {
	Date   string // YYYY-MM-DD
	Stock  int
	Demand int
}
