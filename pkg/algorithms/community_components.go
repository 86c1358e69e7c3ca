package algorithms

import (
	"context"

	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

// ComponentsDetector treats each connected component as a community.
// It is the fallback strategy when modularity optimisation is disabled
// or the graph has no edges to optimise over.
type ComponentsDetector struct{}

// Name returns the strategy name.
func (d *ComponentsDetector) Name() string {
	return StrategyConnectedComponents
}

// Detect assigns one community per connected component. Isolated nodes
// become singleton communities.
func (d *ComponentsDetector) Detect(ctx context.Context, g *graph.Graph) (*DetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	components := ConnectedComponents(g)
	result := &DetectionResult{
		Communities:   make([]Community, 0, len(components)),
		NodeCommunity: make(map[string]int, g.NodeCount()),
		Strategy:      d.Name(),
	}
	for i, comp := range components {
		members := make([]string, len(comp))
		copy(members, comp)
		result.Communities = append(result.Communities, Community{ID: i, Members: members})
		for _, node := range comp {
			result.NodeCommunity[node] = i
		}
	}
	return result, nil
}
