package algorithms

import (
	"context"

	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

// Strategy names recorded in detection results.
const (
	StrategyLouvain             = "louvain"
	StrategyConnectedComponents = "connected_components"
)

// Community is one block of a partition.
type Community struct {
	ID      int      `json:"id"`
	Members []string `json:"members"`
}

// Size returns the number of members.
func (c *Community) Size() int {
	return len(c.Members)
}

// DetectionResult is the full, unfiltered partition of a graph's nodes:
// every node belongs to exactly one community.
type DetectionResult struct {
	Communities   []Community    `json:"communities"`
	NodeCommunity map[string]int `json:"-"`
	Strategy      string         `json:"strategy"`
}

// Detector partitions a graph's nodes into communities. Callers depend on
// this interface only, never on which concrete strategy ran; the result
// records the strategy for reporting.
type Detector interface {
	// Name returns the strategy name recorded in results.
	Name() string
	// Detect computes the partition. It never modifies the graph.
	Detect(ctx context.Context, g *graph.Graph) (*DetectionResult, error)
}

// SelectDetector picks the detection strategy at construction time:
// Louvain when enabled and the graph has edges to optimise over, the
// connected-components fallback otherwise.
func SelectDetector(g *graph.Graph, enableLouvain bool) Detector {
	if enableLouvain && g.EdgeCount() > 0 {
		return NewLouvainDetector()
	}
	return &ComponentsDetector{}
}
