package algorithms

import (
	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

// ConnectedComponents finds all connected components of the graph. Components
// are returned in order of their lexically smallest member; members appear in
// BFS discovery order. Iteration is deterministic for a given graph.
func ConnectedComponents(g *graph.Graph) [][]string {
	visited := make(map[string]bool, g.NodeCount())
	components := make([][]string, 0)

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}

		component := make([]string, 0)
		queue := []string{start}
		visited[start] = true

		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			component = append(component, node)

			for _, neighbor := range g.Neighbors(node) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

// LargestComponent returns the members of the largest connected component,
// or nil for an empty graph. Ties go to the earliest component found, which
// is the one with the lexically smallest member.
func LargestComponent(g *graph.Graph) []string {
	var largest []string
	for _, component := range ConnectedComponents(g) {
		if len(component) > len(largest) {
			largest = component
		}
	}
	return largest
}
