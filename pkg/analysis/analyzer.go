// Package analysis orchestrates a full bibliometric run: it builds the
// collaboration and keyword graphs from a corpus snapshot, runs the
// centrality suite and community detection, aggregates corpus statistics,
// and assembles the combined report.
package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-bibliometrics/pkg/algorithms"
	"github.com/dd0wney/cluso-bibliometrics/pkg/bibliometric"
	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
	"github.com/dd0wney/cluso-bibliometrics/pkg/logging"
	"github.com/dd0wney/cluso-bibliometrics/pkg/metrics"
	"github.com/dd0wney/cluso-bibliometrics/pkg/validation"
)

// Keyword rankings are longer than the author-centrality lists.
const keywordTopN = 20

// Analyzer runs the full pipeline for one corpus. It is safe for
// concurrent use: each run works on its own graphs and report.
type Analyzer struct {
	cfg     Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewAnalyzer validates the configuration and returns an analyzer. A nil
// logger disables logging and a nil registry disables metrics.
func NewAnalyzer(cfg Config, logger logging.Logger, registry *metrics.Registry) (*Analyzer, error) {
	if err := validation.ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &Analyzer{cfg: cfg, logger: logger, metrics: registry}, nil
}

// Analyze runs the pipeline over a corpus snapshot. An empty corpus
// yields a complete zero-valued report, not an error.
func (a *Analyzer) Analyze(ctx context.Context, c *corpus.Corpus) (*Report, error) {
	runID := uuid.NewString()
	logger := a.logger.With(logging.RunID(runID))
	started := time.Now()

	timer := logging.StartTimer(logger, "analysis run", logging.Papers(c.Len()))

	report, err := a.analyze(ctx, logger, c)
	if err != nil {
		timer.EndError(err)
		a.metrics.RecordAnalysis("error", time.Since(started), c.Len())
		return nil, err
	}
	report.RunID = runID
	report.GeneratedAt = started.UTC()

	timer.End()
	a.metrics.RecordAnalysis("success", time.Since(started), c.Len())
	return report, nil
}

func (a *Analyzer) analyze(ctx context.Context, logger logging.Logger, c *corpus.Corpus) (*Report, error) {
	papers := c.Papers()

	// The two graphs are independent; build them in parallel.
	var (
		wg           sync.WaitGroup
		authorGraph  *graph.Graph
		keywordGraph *graph.Graph
		authorErr    error
		keywordErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		buildStart := time.Now()
		authorGraph, authorErr = graph.Build(papers, graph.Authors, a.cfg.MinCollaborations)
		if authorErr == nil {
			a.metrics.RecordGraphBuild("coauthorship", time.Since(buildStart),
				authorGraph.NodeCount(), authorGraph.EdgeCount())
		}
	}()
	go func() {
		defer wg.Done()
		buildStart := time.Now()
		keywordGraph, keywordErr = graph.Build(papers, graph.Keywords, a.cfg.MinCooccurrence)
		if keywordErr == nil {
			a.metrics.RecordGraphBuild("keywords", time.Since(buildStart),
				keywordGraph.NodeCount(), keywordGraph.EdgeCount())
		}
	}()
	wg.Wait()

	if authorErr != nil {
		return nil, fmt.Errorf("failed to build co-authorship graph: %w", authorErr)
	}
	if keywordErr != nil {
		return nil, fmt.Errorf("failed to build keyword graph: %w", keywordErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("graphs built",
		logging.GraphName("coauthorship"),
		logging.Nodes(authorGraph.NodeCount()),
		logging.Edges(authorGraph.EdgeCount()))

	coauthorship := a.analyzeCoauthorship(logger, authorGraph)
	communities, err := a.detectCommunities(ctx, logger, authorGraph, papers)
	if err != nil {
		return nil, err
	}

	return &Report{
		Coauthorship: coauthorship,
		Communities:  communities,
		Keywords:     a.analyzeKeywords(keywordGraph),
		Bibliometric: bibliometric.NewAggregator(logger).Analyze(papers),
	}, nil
}

func (a *Analyzer) analyzeCoauthorship(logger logging.Logger, g *graph.Graph) *CoauthorshipReport {
	opts := algorithms.DefaultCentralityOptions()
	opts.ScaleCutoff = a.cfg.CentralityScaleCutoff
	opts.EigenvectorMaxIter = a.cfg.EigenvectorMaxIter
	opts.TopN = a.cfg.TopN

	started := time.Now()
	centrality := algorithms.AnalyzeCentrality(g, opts)
	a.metrics.RecordCentrality("coauthorship", time.Since(started),
		!centrality.PathMetricsAvailable, centrality.EigenvectorIterations)

	if !centrality.PathMetricsAvailable && g.NodeCount() > 0 {
		logger.Warn("path metrics skipped",
			logging.GraphName("coauthorship"),
			logging.Int("largest_component", centrality.LargestComponentSize),
			logging.Int("scale_cutoff", opts.ScaleCutoff))
	}

	return &CoauthorshipReport{
		NAuthors:         g.NodeCount(),
		NCollaborations:  g.EdgeCount(),
		CentralityReport: *centrality,
	}
}

func (a *Analyzer) detectCommunities(ctx context.Context, logger logging.Logger, g *graph.Graph, papers []corpus.Paper) (*algorithms.CommunityReport, error) {
	detector := algorithms.SelectDetector(g, !a.cfg.DisableLouvain)

	started := time.Now()
	result, err := detector.Detect(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("community detection failed: %w", err)
	}

	report := algorithms.BuildCommunityReport(g, result, papers, a.cfg.MinCommunitySize)
	a.metrics.RecordCommunityDetection(result.Strategy, time.Since(started),
		report.NumCommunities, report.Modularity)

	logger.Info("communities detected",
		logging.Strategy(result.Strategy),
		logging.Communities(report.NumCommunities),
		logging.Float64("modularity", report.Modularity))
	return report, nil
}

func (a *Analyzer) analyzeKeywords(g *graph.Graph) *KeywordReport {
	connectedness := make(map[string]float64, g.NodeCount())
	for _, node := range g.Nodes() {
		connectedness[node] = float64(g.Degree(node))
	}

	clusters := algorithms.ConnectedComponents(g)
	largest := 0
	for _, cluster := range clusters {
		if len(cluster) > largest {
			largest = len(cluster)
		}
	}

	return &KeywordReport{
		NKeywords:            g.NodeCount(),
		NConnections:         g.EdgeCount(),
		NKeywordClusters:     len(clusters),
		LargestClusterSize:   largest,
		TopConnectedKeywords: algorithms.TopNodes(connectedness, keywordTopN),
	}
}
