package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Analysis Metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	CorpusPapers     prometheus.Gauge

	// Graph Metrics
	GraphBuildDuration *prometheus.HistogramVec
	GraphNodesTotal    *prometheus.GaugeVec
	GraphEdgesTotal    *prometheus.GaugeVec

	// Centrality Metrics
	CentralityDuration    *prometheus.HistogramVec
	CentralitySkipsTotal  *prometheus.CounterVec
	EigenvectorIterations prometheus.Histogram

	// Community Metrics
	CommunityDetectionDuration *prometheus.HistogramVec
	CommunitiesFound           *prometheus.GaugeVec
	Modularity                 *prometheus.GaugeVec

	// Export Metrics
	ExportsTotal      *prometheus.CounterVec
	ExportSizeBytes   *prometheus.HistogramVec
	ExportErrorsTotal prometheus.Counter

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initAnalysisMetrics()
	r.initGraphMetrics()
	r.initAlgorithmMetrics()
	r.initExportMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
