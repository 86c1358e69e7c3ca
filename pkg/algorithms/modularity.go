package algorithms

import "github.com/dd0wney/cluso-bibliometrics/pkg/graph"

// Modularity computes Newman's weighted modularity of the given
// communities over g. Communities must be disjoint but need not cover
// the whole graph: nodes outside every community contribute nothing,
// while total weight and degrees still come from the full graph.
// Returns 0 for a graph with no edges. The result lies in [-1, 1].
func Modularity(g *graph.Graph, communities []Community) float64 {
	m := g.TotalWeight()
	if m == 0 {
		return 0
	}

	m2 := 2 * m
	q := 0.0
	for i := range communities {
		members := communities[i].Members
		inside := make(map[string]struct{}, len(members))
		for _, node := range members {
			inside[node] = struct{}{}
		}

		var internal, degreeSum float64
		for _, node := range members {
			degreeSum += g.WeightedDegree(node)
			for nbr, w := range g.NeighborWeights(node) {
				if _, ok := inside[nbr]; ok {
					internal += float64(w)
				}
			}
		}
		// internal counted each edge from both endpoints.
		frac := degreeSum / m2
		q += internal/m2 - frac*frac
	}
	return q
}
