// Package metrics métricas Prometheus del servidor HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics contadores e histogramas por handler.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

// New registra y devuelve las métricas del servicio.
func New(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "supplysight",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total de peticiones HTTP.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "supplysight",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "Latencia de las peticiones HTTP en milisegundos.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// Handler expone el endpoint /metrics estándar.
func Handler() http.Handler {
	return promhttp.Handler()
}
