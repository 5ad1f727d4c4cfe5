package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the API and the
// simulation engine.
type Metrics struct {
	// HTTP metrics.
	HTTPRequests        *prometheus.CounterVec   // labels: method, path, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, path

	// Simulation metrics.
	SimulationsTotal    *prometheus.CounterVec   // labels: indicator, region
	SimulationFallbacks *prometheus.CounterVec   // labels: indicator
	SimulationDuration  *prometheus.HistogramVec // labels: indicator

	// NASA Earthdata CMR metrics.
	EarthdataRequests *prometheus.CounterVec // labels: product, outcome={success,error}
}

// NewMetrics creates and registers all application metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "earthpulse",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "earthpulse",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by method and route.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
		SimulationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "earthpulse",
			Name:      "simulations_total",
			Help:      "Simulation runs by indicator and region.",
		}, []string{"indicator", "region"}),
		SimulationFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "earthpulse",
			Name:      "simulation_fallbacks_total",
			Help:      "Simulations that degraded to a static fallback record.",
		}, []string{"indicator"}),
		SimulationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "earthpulse",
			Name:      "simulation_duration_seconds",
			Help:      "Simulation duration in seconds, including any simulated upstream delay.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.1, 0.25, 0.5, 0.75, 1},
		}, []string{"indicator"}),
		EarthdataRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "earthpulse",
			Name:      "earthdata_requests_total",
			Help:      "CMR granule search requests by product and outcome.",
		}, []string{"product", "outcome"}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.SimulationsTotal,
		m.SimulationFallbacks,
		m.SimulationDuration,
		m.EarthdataRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "earthpulse", Name: "http_requests_total"}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "earthpulse", Name: "http_request_duration_seconds"}, []string{"method", "path"}),
		SimulationsTotal:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "earthpulse", Name: "simulations_total"}, []string{"indicator", "region"}),
		SimulationFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "earthpulse", Name: "simulation_fallbacks_total"}, []string{"indicator"}),
		SimulationDuration:  prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "earthpulse", Name: "simulation_duration_seconds"}, []string{"indicator"}),
		EarthdataRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "earthpulse", Name: "earthdata_requests_total"}, []string{"product", "outcome"}),
	}
}
