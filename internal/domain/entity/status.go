package entity

// Status clasifica la salud de un producto comparando stock contra demanda.
type Status string

const (
	StatusHealthy  Status = "Healthy"
	StatusLow      Status = "Low"
	StatusCritical Status = "Critical"
)

// Classify deriva el estado a partir de stock y demanda:
// Healthy si stock > demanda, Low si son iguales, Critical si stock < demanda.
// Es una función total sobre enteros; no tiene casos de error.
func Classify(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// ParseStatus interpreta un filtro de estado. Cualquier valor distinto de
// Healthy/Low/Critical devuelve ok=false: el filtro se ignora, no es un error.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusHealthy, StatusLow, StatusCritical:
		return Status(s), true
	}
	return "", false
}
