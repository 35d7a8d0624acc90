package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the dashboard service.
type Metrics struct {
	registry *prometheus.Registry

	// Request metrics per dashboard view
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Dataset metrics
	DatasetRows prometheus.Gauge
}

// NewMetrics creates a metrics registry with every dashboard metric
// already registered. Each Server carries its own registry so tests can
// spin up instances without metric name collisions.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coffeedash_requests_total",
				Help: "Requests served, by dashboard view and status code",
			},
			[]string{"view", "code"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coffeedash_request_duration_seconds",
				Help:    "Time spent serving each dashboard view in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"view"},
		),

		DatasetRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "coffeedash_dataset_rows",
				Help: "Transactions in the loaded dataset",
			},
		),
	}

	m.registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.DatasetRows)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
