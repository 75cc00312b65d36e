package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the compile service's Prometheus instrumentation, backed
// by its own registry rather than the global default one - each NewMetrics
// call is independent, which also keeps repeated construction in tests
// from panicking on duplicate collector registration.
type Metrics struct {
	registry *prometheus.Registry

	CompileTotal          *prometheus.CounterVec
	CompileDuration       prometheus.Histogram
	DiagnosticsBySeverity *prometheus.CounterVec
}

// NewMetrics builds the compile service's counters and histograms.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		CompileTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schemac_compile_total",
			Help: "Total number of compile requests, labeled by outcome.",
		}, []string{"outcome"}),
		CompileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name: "schemac_compile_duration_seconds",
			Help: "Compile request latency in seconds.",
		}),
		DiagnosticsBySeverity: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schemac_diagnostics_total",
			Help: "Total number of diagnostics emitted, labeled by severity.",
		}, []string{"severity"}),
	}
}

// Handler serves this Metrics instance's registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
