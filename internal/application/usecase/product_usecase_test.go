package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplysight-api/internal/application/dto"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/memstore"
)

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	cat := memstore.NewCatalog(memstore.DefaultSeed())
	return usecase.NewProductUseCase(memstore.NewProductRepository(cat))
}

func ids(items []dto.ProductResponse) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestQuery_SinFiltrosDevuelveTodoEnOrdenDeSemilla(t *testing.T) {
	uc := newProductUC(t)

	out := uc.Query(dto.ProductQueryRequest{})
	assert.Equal(t, []string{"P-1001", "P-1002", "P-1003", "P-1004"}, ids(out.Items))
	assert.Equal(t, 4, out.Total)
}

func TestQuery_BusquedaSinDistinguirMayusculas(t *testing.T) {
	uc := newProductUC(t)

	// coincide por nombre y por SKU
	out := uc.Query(dto.ProductQueryRequest{Search: "hex"})
	assert.Equal(t, []string{"P-1001"}, ids(out.Items), "hex coincide con '12mm Hex Bolt' y 'HEX-12-100'")

	// coincide por id
	out = uc.Query(dto.ProductQueryRequest{Search: "p-1002"})
	assert.Equal(t, []string{"P-1002"}, ids(out.Items))

	// coincide por SKU parcial
	out = uc.Query(dto.ProductQueryRequest{Search: "brg-608"})
	assert.Equal(t, []string{"P-1004"}, ids(out.Items))

	// sin coincidencias
	out = uc.Query(dto.ProductQueryRequest{Search: "tornillo"})
	assert.Empty(t, out.Items)
}

func TestQuery_BusquedaEnBlancoNoFiltra(t *testing.T) {
	uc := newProductUC(t)

	for _, s := range []string{"", "   ", "\t"} {
		out := uc.Query(dto.ProductQueryRequest{Search: s})
		assert.Equal(t, 4, out.Total, "búsqueda %q debe tratarse como sin filtro", s)
	}
}

func TestQuery_FiltroPorBodega(t *testing.T) {
	uc := newProductUC(t)

	out := uc.Query(dto.ProductQueryRequest{Warehouse: "BLR-A"})
	assert.Equal(t, []string{"P-1001", "P-1002"}, ids(out.Items))

	out = uc.Query(dto.ProductQueryRequest{Warehouse: "ZZZ-9"})
	assert.Empty(t, out.Items, "una bodega desconocida filtra todo (igualdad exacta)")
}

func TestQuery_FiltroPorEstado(t *testing.T) {
	uc := newProductUC(t)

	// P-1002 (50 < 80) y P-1004 (24 < 120) son Critical
	out := uc.Query(dto.ProductQueryRequest{Status: "Critical"})
	assert.Equal(t, []string{"P-1002", "P-1004"}, ids(out.Items))

	// P-1002 queda excluido bajo Healthy
	out = uc.Query(dto.ProductQueryRequest{Status: "Healthy"})
	assert.Equal(t, []string{"P-1001"}, ids(out.Items))

	out = uc.Query(dto.ProductQueryRequest{Status: "Low"})
	assert.Equal(t, []string{"P-1003"}, ids(out.Items))
}

func TestQuery_EstadoDesconocidoSeIgnora(t *testing.T) {
	uc := newProductUC(t)

	out := uc.Query(dto.ProductQueryRequest{Status: "bogus"})
	assert.Equal(t, 4, out.Total, "un estado no reconocido es permisivo, no un error")
}

func TestQuery_FiltrosCompuestosConAND(t *testing.T) {
	uc := newProductUC(t)

	out := uc.Query(dto.ProductQueryRequest{
		Search:    "0",
		Status:    "Critical",
		Warehouse: "BLR-A",
	})
	assert.Equal(t, []string{"P-1002"}, ids(out.Items),
		"solo P-1002 es Critical en BLR-A")
}

// TestQuery_Idempotente: la misma consulta dos veces produce el mismo
// conjunto (los filtros no mutan estado).
func TestQuery_Idempotente(t *testing.T) {
	uc := newProductUC(t)
	req := dto.ProductQueryRequest{Search: "1", Status: "Critical"}

	first := uc.Query(req)
	second := uc.Query(req)
	assert.Equal(t, first, second)
}

func TestGetByID(t *testing.T) {
	uc := newProductUC(t)

	out := uc.GetByID("P-1002")
	require.NotNil(t, out)
	assert.Equal(t, "Steel Washer", out.Name)
	assert.Equal(t, "Critical", out.Status, "50 < 80 debe reportarse Critical")

	assert.Nil(t, uc.GetByID("P-9999"))
}
