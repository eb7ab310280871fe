package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplysight-api/internal/application/analytics"
	appreport "github.com/jhoicas/supplysight-api/internal/application/report"
	"github.com/jhoicas/supplysight-api/internal/application/usecase"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/memstore"
	infrareport "github.com/jhoicas/supplysight-api/internal/infrastructure/report"
	"github.com/jhoicas/supplysight-api/internal/infrastructure/trend"
	apphttp "github.com/jhoicas/supplysight-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa sobre un catálogo fresco.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cat := memstore.NewCatalog(memstore.DefaultSeed())
	productRepo := memstore.NewProductRepository(cat)
	warehouseRepo := memstore.NewWarehouseRepository(cat)

	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(productRepo),
		MutationUC:  usecase.NewMutationUseCase(productRepo, warehouseRepo),
		WarehouseUC: usecase.NewWarehouseUseCase(warehouseRepo),
		TrendUC:     analytics.NewTrendUseCase(trend.NewSyntheticSource(trend.DefaultConfig())),
		DashboardUC: analytics.NewDashboardUseCase(productRepo),
		ReportUC:    appreport.NewPDFUseCase(productRepo, infrareport.NewMarotoReportGenerator()),
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func doPost(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProducts_FiltroCritical(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/products?status=Critical")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Items []map[string]any `json:"items"`
		Total int              `json:"total"`
	}
	decode(t, resp, &body)
	require.Equal(t, 2, body.Total)
	assert.Equal(t, "P-1002", body.Items[0]["id"])
	assert.Equal(t, "Critical", body.Items[0]["status"])
}

func TestGetProducts_FiltrosCombinados(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/products?search=washer&warehouse=BLR-A&status=Critical")

	var body struct {
		Total int `json:"total"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 1, body.Total)
}

func TestGetProductByID_NoEncontrado(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/products/P-9999")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGetWarehouses(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/warehouses")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body []map[string]string
	decode(t, resp, &body)
	require.Len(t, body, 3)
	assert.Equal(t, "BLR-A", body[0]["code"], "orden de semilla")
}

func TestGetKPIs_RangoYFallback(t *testing.T) {
	app := buildTestApp(t)

	var series []map[string]any
	decode(t, doGet(t, app, "/api/kpis?range=7d"), &series)
	assert.Len(t, series, 7)

	decode(t, doGet(t, app, "/api/kpis?range=bogus"), &series)
	assert.Len(t, series, 30, "rango no reconocido cae a 30 días")
}

func TestGetDashboardSummary(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/dashboard/summary")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		TotalStock  int    `json:"total_stock"`
		FillRatePct string `json:"fill_rate_pct"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 334, body.TotalStock)
	assert.Equal(t, "68.5", body.FillRatePct)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestPostDemand_Exitoso(t *testing.T) {
	app := buildTestApp(t)
	resp := doPost(t, app, "/api/products/P-1001/demand", map[string]any{"demand": 90})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.EqualValues(t, 90, body["demand"])
	assert.EqualValues(t, 180, body["stock"])
	assert.Equal(t, "Healthy", body["status"])
}

func TestPostDemand_SinCampoDemand(t *testing.T) {
	app := buildTestApp(t)
	resp := doPost(t, app, "/api/products/P-1001/demand", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostDemand_NegativaYNoEncontrado(t *testing.T) {
	app := buildTestApp(t)

	resp := doPost(t, app, "/api/products/P-1001/demand", map[string]any{"demand": -3})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doPost(t, app, "/api/products/P-9999/demand", map[string]any{"demand": 3})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostTransfer_Exitoso(t *testing.T) {
	app := buildTestApp(t)
	resp := doPost(t, app, "/api/products/P-1001/transfer",
		map[string]any{"from": "BLR-A", "to": "PNQ-C", "qty": 50})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.EqualValues(t, 130, body["stock"])
	assert.Equal(t, "PNQ-C", body["warehouse"])
}

func TestPostTransfer_StockInsuficiente(t *testing.T) {
	app := buildTestApp(t)
	resp := doPost(t, app, "/api/products/P-1001/transfer",
		map[string]any{"from": "BLR-A", "to": "PNQ-C", "qty": 500})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestPostTransfer_OrigenIncorrecto(t *testing.T) {
	app := buildTestApp(t)
	resp := doPost(t, app, "/api/products/P-1003/transfer",
		map[string]any{"from": "DEL-B", "to": "BLR-A", "qty": 10})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "INVALID_STATE", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte y middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestGetInventoryReport_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)
	resp := doGet(t, app, "/api/reports/inventory")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

func TestRequestID_SePropagaEnLaRespuesta(t *testing.T) {
	app := buildTestApp(t)

	resp := doGet(t, app, "/api/warehouses")
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID),
		"toda respuesta lleva id de correlación")

	// si el cliente trae uno, se respeta
	req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}
