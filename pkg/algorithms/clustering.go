package algorithms

import (
	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

// ClusteringCoefficients computes the local clustering coefficient for each
// of the given nodes: the fraction of a node's neighbor pairs that are
// themselves connected. Nodes with fewer than two neighbors score 0.
func ClusteringCoefficients(g *graph.Graph, nodes []string) map[string]float64 {
	coefficients := make(map[string]float64, len(nodes))

	for _, node := range nodes {
		neighbors := g.Neighbors(node)
		k := len(neighbors)
		if k < 2 {
			coefficients[node] = 0.0
			continue
		}

		triangles := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					triangles++
				}
			}
		}

		possible := k * (k - 1) / 2
		coefficients[node] = float64(triangles) / float64(possible)
	}

	return coefficients
}

// AverageClustering returns the mean local clustering coefficient over the
// given nodes, 0 for an empty node list.
func AverageClustering(g *graph.Graph, nodes []string) float64 {
	if len(nodes) == 0 {
		return 0.0
	}

	coefficients := ClusteringCoefficients(g, nodes)
	sum := 0.0
	for _, c := range coefficients {
		sum += c
	}
	return sum / float64(len(nodes))
}
