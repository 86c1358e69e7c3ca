package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bibliograph_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bibliograph_analysis_duration_seconds",
			Help:    "End-to-end analysis run duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 5.0, 10.0, 30.0, 60.0, 300.0},
		},
		[]string{"status"},
	)

	r.CorpusPapers = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "bibliograph_corpus_papers",
			Help: "Number of papers in the most recently analyzed corpus",
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphBuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bibliograph_graph_build_duration_seconds",
			Help:    "Graph construction duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
		[]string{"graph"},
	)

	r.GraphNodesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bibliograph_graph_nodes",
			Help: "Number of nodes in the most recently built graph",
		},
		[]string{"graph"},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bibliograph_graph_edges",
			Help: "Number of edges in the most recently built graph",
		},
		[]string{"graph"},
	)
}

func (r *Registry) initAlgorithmMetrics() {
	r.CentralityDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bibliograph_centrality_duration_seconds",
			Help:    "Centrality suite duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"graph"},
	)

	r.CentralitySkipsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bibliograph_centrality_skips_total",
			Help: "Path-metric computations skipped above the scale cutoff",
		},
		[]string{"graph"},
	)

	r.EigenvectorIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bibliograph_eigenvector_iterations",
			Help:    "Power iterations used by eigenvector centrality",
			Buckets: []float64{5, 10, 25, 50, 100},
		},
	)

	r.CommunityDetectionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bibliograph_community_detection_duration_seconds",
			Help:    "Community detection duration in seconds",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
		[]string{"strategy"},
	)

	r.CommunitiesFound = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bibliograph_communities_found",
			Help: "Communities surviving the size filter in the last run",
		},
		[]string{"strategy"},
	)

	r.Modularity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bibliograph_modularity",
			Help: "Modularity of the last detected partition",
		},
		[]string{"strategy"},
	)
}

func (r *Registry) initExportMetrics() {
	r.ExportsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bibliograph_exports_total",
			Help: "Total number of export operations",
		},
		[]string{"format", "status"},
	)

	r.ExportSizeBytes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bibliograph_export_size_bytes",
			Help:    "Size of exported artifacts in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"format"},
	)

	r.ExportErrorsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "bibliograph_export_errors_total",
			Help: "Total number of failed export operations",
		},
	)
}
