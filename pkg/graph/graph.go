// Package graph provides the weighted undirected graph built from a paper
// corpus: nodes are author names or keywords, node weight counts papers the
// node appears on, edge weight counts papers the pair co-occurs on.
package graph

import "sort"

// Edge is an undirected weighted edge in canonical order (From < To).
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Graph is a weighted undirected graph keyed by string node identifiers.
// It is a plain value produced per analysis run; it carries no identity
// beyond the run that built it and is never mutated after Build returns.
type Graph struct {
	nodeWeights map[string]int
	adjacency   map[string]map[string]int
	edgeCount   int
	totalWeight float64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodeWeights: make(map[string]int),
		adjacency:   make(map[string]map[string]int),
	}
}

// addNodeOccurrence registers one more paper occurrence for the node,
// creating the node on first sight.
func (g *Graph) addNodeOccurrence(id string) {
	g.nodeWeights[id]++
}

// addEdge inserts an undirected edge with the given weight. Both ends must
// already exist as nodes; self-loops are the caller's responsibility to
// exclude.
func (g *Graph) addEdge(a, b string, weight int) {
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[string]int)
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[string]int)
	}
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	g.edgeCount++
	g.totalWeight += float64(weight)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodeWeights)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeWeights[id]
	return ok
}

// NodeWeight returns the paper-occurrence count for the node, 0 if absent.
func (g *Graph) NodeWeight(id string) int {
	return g.nodeWeights[id]
}

// EdgeWeight returns the co-occurrence count for the unordered pair (a, b),
// 0 if no edge exists. Lookup is symmetric: EdgeWeight(a, b) == EdgeWeight(b, a).
func (g *Graph) EdgeWeight(a, b string) int {
	return g.adjacency[a][b]
}

// HasEdge reports whether an edge exists between a and b.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Degree returns the number of neighbors of the node.
func (g *Graph) Degree(id string) int {
	return len(g.adjacency[id])
}

// WeightedDegree returns the sum of edge weights incident to the node.
func (g *Graph) WeightedDegree(id string) float64 {
	sum := 0.0
	for _, w := range g.adjacency[id] {
		sum += float64(w)
	}
	return sum
}

// TotalWeight returns the sum of all edge weights (each undirected edge
// counted once). This is m in the modularity formula.
func (g *Graph) TotalWeight() float64 {
	return g.totalWeight
}

// Nodes returns all node identifiers in ascending lexical order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodeWeights))
	for id := range g.nodeWeights {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)
	return nodes
}

// Neighbors returns the neighbors of the node in ascending lexical order.
func (g *Graph) Neighbors(id string) []string {
	neighbors := make([]string, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// NeighborWeights returns the neighbor -> edge weight map for the node.
// Callers must not modify the returned map.
func (g *Graph) NeighborWeights(id string) map[string]int {
	return g.adjacency[id]
}

// Edges returns all edges in canonical form (From < To), sorted by From
// then To for deterministic iteration.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for a, neighbors := range g.adjacency {
		for b, w := range neighbors {
			if a < b {
				edges = append(edges, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// Density returns 2E / (V(V-1)), or 0 when the graph has fewer than two
// nodes.
func (g *Graph) Density() float64 {
	n := len(g.nodeWeights)
	if n <= 1 {
		return 0
	}
	return 2.0 * float64(g.edgeCount) / (float64(n) * float64(n-1))
}
