package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-bibliometrics/pkg/algorithms"
	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
)

func sampleCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	papers := []corpus.Paper{
		{
			ID:         "p1",
			Authors:    []string{"Alice", "Bob"},
			Categories: []string{"cs.LG"},
			Keywords:   []string{"graphs", "learning"},
		},
		{
			ID:         "p2",
			Authors:    []string{"Bob", "Charlie"},
			Categories: []string{"cs.LG"},
			Keywords:   []string{"graphs", "learning"},
		},
		{
			ID:         "p3",
			Authors:    []string{"Alice", "Diana"},
			Categories: []string{"stat.ML"},
			Keywords:   []string{"inference"},
		},
	}
	return corpus.NewCorpus(papers)
}

func newTestAnalyzer(t *testing.T, cfg Config) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(cfg, nil, nil)
	require.NoError(t, err)
	return a
}

func TestNewAnalyzerRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinCollaborations = -1
	_, err := NewAnalyzer(cfg, nil, nil)
	assert.Error(t, err)
}

func TestAnalyzeFullPipeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinCommunitySize = 1
	a := newTestAnalyzer(t, cfg)

	report, err := a.Analyze(context.Background(), sampleCorpus(t))
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())

	require.NotNil(t, report.Coauthorship)
	assert.Equal(t, 4, report.Coauthorship.NAuthors)
	assert.Equal(t, 3, report.Coauthorship.NCollaborations)
	assert.True(t, report.Coauthorship.PathMetricsAvailable)
	assert.Equal(t, float64(2), report.Coauthorship.Degree["Alice"])
	assert.Equal(t, float64(2), report.Coauthorship.Degree["Bob"])
	assert.Equal(t, float64(1), report.Coauthorship.Degree["Charlie"])
	assert.Equal(t, float64(1), report.Coauthorship.Degree["Diana"])

	require.NotNil(t, report.Communities)
	assert.NotEmpty(t, report.Communities.Strategy)

	require.NotNil(t, report.Keywords)
	// graphs and learning co-occur on two papers and meet the threshold;
	// inference stays an isolated node.
	assert.Equal(t, 3, report.Keywords.NKeywords)
	assert.Equal(t, 1, report.Keywords.NConnections)
	assert.Equal(t, 2, report.Keywords.NKeywordClusters)
	assert.Equal(t, 2, report.Keywords.LargestClusterSize)

	require.NotNil(t, report.Bibliometric)
	assert.Equal(t, 3, report.Bibliometric.Summary.TotalPapers)
	assert.Equal(t, 4, report.Bibliometric.Summary.TotalAuthors)
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	report, err := a.Analyze(context.Background(), corpus.NewCorpus(nil))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Coauthorship.NAuthors)
	assert.Equal(t, 0, report.Coauthorship.NCollaborations)
	assert.False(t, report.Coauthorship.PathMetricsAvailable)
	assert.Equal(t, 0, report.Communities.NumCommunities)
	assert.Equal(t, 0.0, report.Communities.Modularity)
	assert.Equal(t, 0, report.Keywords.NKeywords)
	assert.Equal(t, 0, report.Bibliometric.Summary.TotalPapers)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	a := newTestAnalyzer(t, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Analyze(ctx, sampleCorpus(t))
	assert.Error(t, err)
}

func TestAnalyzeTopKeywordsRankedByDistinctNeighbors(t *testing.T) {
	// "serverless" co-occurs with one partner five times; "edge" co-occurs
	// with two partners twice each. Distinct-neighbor count wins over
	// accumulated pair weight.
	var papers []corpus.Paper
	for i := 0; i < 5; i++ {
		papers = append(papers, corpus.Paper{
			ID:       "h" + string(rune('1'+i)),
			Keywords: []string{"serverless", "wasm"},
		})
	}
	for i := 0; i < 2; i++ {
		papers = append(papers,
			corpus.Paper{ID: "e" + string(rune('1'+i)), Keywords: []string{"edge", "latency"}},
			corpus.Paper{ID: "f" + string(rune('1'+i)), Keywords: []string{"edge", "offloading"}},
		)
	}

	a := newTestAnalyzer(t, DefaultConfig())
	report, err := a.Analyze(context.Background(), corpus.NewCorpus(papers))
	require.NoError(t, err)

	top := report.Keywords.TopConnectedKeywords
	require.NotEmpty(t, top)
	assert.Equal(t, "edge", top[0].ID)
	assert.Equal(t, 2.0, top[0].Score)
}

func TestAnalyzeDisableLouvain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisableLouvain = true
	cfg.MinCommunitySize = 1
	a := newTestAnalyzer(t, cfg)

	report, err := a.Analyze(context.Background(), sampleCorpus(t))
	require.NoError(t, err)
	assert.Equal(t, algorithms.StrategyConnectedComponents, report.Communities.Strategy)
}

func TestAnalyzeScaleCutoff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CentralityScaleCutoff = 2
	cfg.MinCommunitySize = 1
	a := newTestAnalyzer(t, cfg)

	report, err := a.Analyze(context.Background(), sampleCorpus(t))
	require.NoError(t, err)

	assert.False(t, report.Coauthorship.PathMetricsAvailable)
	assert.Nil(t, report.Coauthorship.Betweenness)
	// Degree is still computed for the whole graph.
	assert.Len(t, report.Coauthorship.Degree, 4)
}

func TestAnalyzeThresholdFiltersEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinCollaborations = 2
	cfg.MinCommunitySize = 1
	a := newTestAnalyzer(t, cfg)

	report, err := a.Analyze(context.Background(), sampleCorpus(t))
	require.NoError(t, err)

	// All pairs collaborated exactly once; nodes survive, edges do not.
	assert.Equal(t, 4, report.Coauthorship.NAuthors)
	assert.Equal(t, 0, report.Coauthorship.NCollaborations)
}
