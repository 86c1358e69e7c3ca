package graph

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
)

// threePaperCorpus is the canonical small corpus used across packages:
// P1={Alice,Bob}, P2={Bob,Charlie}, P3={Alice,Diana}.
func threePaperCorpus() []corpus.Paper {
	return []corpus.Paper{
		{ID: "p1", Authors: []string{"Alice", "Bob"}},
		{ID: "p2", Authors: []string{"Bob", "Charlie"}},
		{ID: "p3", Authors: []string{"Alice", "Diana"}},
	}
}

func TestBuildCoauthorshipGraph(t *testing.T) {
	g, err := Build(threePaperCorpus(), Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.NodeCount() != 4 {
		t.Errorf("Expected 4 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("Expected 3 edges, got %d", g.EdgeCount())
	}

	expected := []struct {
		a, b   string
		weight int
	}{
		{"Alice", "Bob", 1},
		{"Bob", "Charlie", 1},
		{"Alice", "Diana", 1},
	}
	for _, e := range expected {
		if got := g.EdgeWeight(e.a, e.b); got != e.weight {
			t.Errorf("EdgeWeight(%s, %s) = %d, want %d", e.a, e.b, got, e.weight)
		}
	}

	// No isolated nodes in this corpus
	for _, node := range g.Nodes() {
		if g.Degree(node) == 0 {
			t.Errorf("Expected no isolated nodes, %s has degree 0", node)
		}
	}
}

func TestBuildThresholdRemovesEdges(t *testing.T) {
	g, err := Build(threePaperCorpus(), Authors, 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.NodeCount() != 4 {
		t.Errorf("Expected 4 nodes regardless of threshold, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges at threshold 2, got %d", g.EdgeCount())
	}
}

func TestBuildEdgeWeightAccumulates(t *testing.T) {
	papers := []corpus.Paper{
		{ID: "p1", Authors: []string{"Alice", "Bob"}},
		{ID: "p2", Authors: []string{"Alice", "Bob", "Charlie"}},
		{ID: "p3", Authors: []string{"Bob", "Alice"}},
	}

	g, err := Build(papers, Authors, 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Alice-Bob co-occur on all three papers; weight is the full counter,
	// not the threshold.
	if got := g.EdgeWeight("Alice", "Bob"); got != 3 {
		t.Errorf("Expected Alice-Bob weight 3, got %d", got)
	}
	// Pairs below the threshold are dropped entirely.
	if g.HasEdge("Alice", "Charlie") {
		t.Error("Expected Alice-Charlie below threshold to be absent")
	}
}

func TestBuildSymmetricLookup(t *testing.T) {
	g, err := Build(threePaperCorpus(), Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.EdgeWeight("Alice", "Bob") != g.EdgeWeight("Bob", "Alice") {
		t.Error("Edge weight lookup must be symmetric")
	}
	if g.HasEdge("Charlie", "Bob") != g.HasEdge("Bob", "Charlie") {
		t.Error("Edge existence lookup must be symmetric")
	}
}

func TestBuildSingleAuthorPaperAddsNoEdges(t *testing.T) {
	papers := []corpus.Paper{
		{ID: "p1", Authors: []string{"Solo"}},
	}

	g, err := Build(papers, Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.NodeCount() != 1 {
		t.Errorf("Expected 1 node, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges, got %d", g.EdgeCount())
	}
	if g.NodeWeight("Solo") != 1 {
		t.Errorf("Expected node weight 1, got %d", g.NodeWeight("Solo"))
	}
}

func TestBuildDuplicateNameWithinPaper(t *testing.T) {
	// The source data does not deduplicate author lists. A repeated name
	// double-counts its pairs but never produces a self-loop, and the node
	// occurrence still counts once for the paper.
	papers := []corpus.Paper{
		{ID: "p1", Authors: []string{"Alice", "Alice", "Bob"}},
	}

	g, err := Build(papers, Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.NodeCount())
	}
	if g.HasEdge("Alice", "Alice") {
		t.Error("Self-loops must never be created")
	}
	if got := g.EdgeWeight("Alice", "Bob"); got != 2 {
		t.Errorf("Expected Alice-Bob weight 2 from duplicated name, got %d", got)
	}
	if got := g.NodeWeight("Alice"); got != 1 {
		t.Errorf("Expected Alice occurrence count 1 for one paper, got %d", got)
	}
}

func TestBuildNodeWeightsCountPapers(t *testing.T) {
	g, err := Build(threePaperCorpus(), Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expected := map[string]int{"Alice": 2, "Bob": 2, "Charlie": 1, "Diana": 1}
	for name, want := range expected {
		if got := g.NodeWeight(name); got != want {
			t.Errorf("NodeWeight(%s) = %d, want %d", name, got, want)
		}
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	g, err := Build(nil, Authors, 1)
	if err != nil {
		t.Fatalf("Build on empty corpus must not fail: %v", err)
	}

	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("Expected empty graph, got %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	if g.Density() != 0 {
		t.Errorf("Expected density 0 for empty graph, got %f", g.Density())
	}
}

func TestBuildMissingAuthorsField(t *testing.T) {
	papers := []corpus.Paper{
		{ID: "p1"}, // no authors field at all
		{ID: "p2", Authors: []string{"Alice", "Bob"}},
	}

	g, err := Build(papers, Authors, 1)
	if err != nil {
		t.Fatalf("Build must treat missing fields as empty contribution: %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes from the valid paper, got %d", g.NodeCount())
	}
}

func TestBuildKeywordGraph(t *testing.T) {
	papers := []corpus.Paper{
		{ID: "p1", Keywords: []string{"edge", "latency", "offloading"}},
		{ID: "p2", Keywords: []string{"edge", "latency"}},
		{ID: "p3", Keywords: []string{"edge", "caching"}},
	}

	g, err := Build(papers, Keywords, 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := g.EdgeWeight("edge", "latency"); got != 2 {
		t.Errorf("Expected edge-latency weight 2, got %d", got)
	}
	if g.HasEdge("edge", "caching") {
		t.Error("Expected edge-caching below min_cooccurrence to be absent")
	}
	if g.NodeWeight("edge") != 3 {
		t.Errorf("Expected keyword 'edge' count 3, got %d", g.NodeWeight("edge"))
	}
}

func TestBuildRejectsInvalidThreshold(t *testing.T) {
	for _, minWeight := range []int{0, -1, -100} {
		_, err := Build(threePaperCorpus(), Authors, minWeight)
		if !errors.Is(err, ErrInvalidMinWeight) {
			t.Errorf("Expected ErrInvalidMinWeight for threshold %d, got %v", minWeight, err)
		}
	}
}

func TestDensityPathGraph(t *testing.T) {
	g, err := Build(threePaperCorpus(), Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// 4 nodes, 3 edges: density = 2*3 / (4*3) = 0.5
	if got := g.Density(); got != 0.5 {
		t.Errorf("Expected density 0.5, got %f", got)
	}
}

func TestEdgesDeterministicOrder(t *testing.T) {
	g, err := Build(threePaperCorpus(), Authors, 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	edges := g.Edges()
	want := []Edge{
		{From: "Alice", To: "Bob", Weight: 1},
		{From: "Alice", To: "Diana", Weight: 1},
		{From: "Bob", To: "Charlie", Weight: 1},
	}
	if len(edges) != len(want) {
		t.Fatalf("Expected %d edges, got %d", len(want), len(edges))
	}
	for i, e := range want {
		if edges[i] != e {
			t.Errorf("Edges()[%d] = %+v, want %+v", i, edges[i], e)
		}
	}
}
