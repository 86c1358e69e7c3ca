package metrics

import (
	"time"
)

// RecordAnalysis records one end-to-end analysis run
func (r *Registry) RecordAnalysis(status string, duration time.Duration, papers int) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.WithLabelValues(status).Observe(duration.Seconds())
	r.CorpusPapers.Set(float64(papers))
}

// RecordGraphBuild records one graph construction
func (r *Registry) RecordGraphBuild(graph string, duration time.Duration, nodes, edges int) {
	r.GraphBuildDuration.WithLabelValues(graph).Observe(duration.Seconds())
	r.GraphNodesTotal.WithLabelValues(graph).Set(float64(nodes))
	r.GraphEdgesTotal.WithLabelValues(graph).Set(float64(edges))
}

// RecordCentrality records one centrality suite run
func (r *Registry) RecordCentrality(graph string, duration time.Duration, skipped bool, eigenvectorIterations int) {
	r.CentralityDuration.WithLabelValues(graph).Observe(duration.Seconds())
	if skipped {
		r.CentralitySkipsTotal.WithLabelValues(graph).Inc()
		return
	}
	r.EigenvectorIterations.Observe(float64(eigenvectorIterations))
}

// RecordCommunityDetection records one community detection run
func (r *Registry) RecordCommunityDetection(strategy string, duration time.Duration, communities int, modularity float64) {
	r.CommunityDetectionDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	r.CommunitiesFound.WithLabelValues(strategy).Set(float64(communities))
	r.Modularity.WithLabelValues(strategy).Set(modularity)
}

// RecordExport records one export operation
func (r *Registry) RecordExport(format, status string, sizeBytes int) {
	r.ExportsTotal.WithLabelValues(format, status).Inc()
	if status == "success" {
		r.ExportSizeBytes.WithLabelValues(format).Observe(float64(sizeBytes))
	} else {
		r.ExportErrorsTotal.Inc()
	}
}
