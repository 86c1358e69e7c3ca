package algorithms

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

// CentralityOptions configures the centrality suite.
type CentralityOptions struct {
	// ScaleCutoff is the largest-component size above which betweenness,
	// closeness, and eigenvector centrality are skipped. Skipping is a
	// cost-control policy, not an error; the report flags the omission.
	ScaleCutoff int
	// EigenvectorMaxIter bounds the power iteration. On exhaustion the last
	// iterate is reported with Converged=false rather than failing.
	EigenvectorMaxIter int
	// EigenvectorTol is the per-node convergence tolerance.
	EigenvectorTol float64
	// TopN is the length of each ranking list.
	TopN int
}

// DefaultCentralityOptions returns the standard configuration.
func DefaultCentralityOptions() CentralityOptions {
	return CentralityOptions{
		ScaleCutoff:        1000,
		EigenvectorMaxIter: 100,
		EigenvectorTol:     1e-6,
		TopN:               10,
	}
}

// CentralityReport holds all centrality measures for one graph. Degree and
// the basic structure metrics cover the whole graph; the path metrics are
// restricted to the largest connected component and are only present when
// PathMetricsAvailable is true. Absent metrics have nil maps, never
// silently-zero values.
type CentralityReport struct {
	NodeCount             int     `json:"node_count"`
	EdgeCount             int     `json:"edge_count"`
	Density               float64 `json:"density"`
	ComponentCount        int     `json:"n_components"`
	LargestComponentSize  int     `json:"largest_component_size"`
	LargestComponentEdges int     `json:"largest_component_edges"`
	AvgDegree             float64 `json:"avg_degree"`
	MaxDegree             int     `json:"max_degree"`
	MinDegree             int     `json:"min_degree"`
	AvgClustering         float64 `json:"avg_clustering"`

	Degree      map[string]float64 `json:"-"`
	TopByDegree []RankedNode       `json:"top_degree"`

	// PathMetricsAvailable distinguishes "skipped above the scale cutoff"
	// from "computed as zero".
	PathMetricsAvailable bool `json:"path_metrics_available"`

	Betweenness map[string]float64 `json:"-"`
	Closeness   map[string]float64 `json:"-"`
	Eigenvector map[string]float64 `json:"-"`

	TopByBetweenness []RankedNode `json:"top_betweenness,omitempty"`
	TopByCloseness   []RankedNode `json:"top_closeness,omitempty"`
	TopByEigenvector []RankedNode `json:"top_eigenvector,omitempty"`

	EigenvectorConverged  bool `json:"eigenvector_converged"`
	EigenvectorIterations int  `json:"eigenvector_iterations"`
}

// AnalyzeCentrality computes the centrality suite for the graph. Degree is
// computed unconditionally; betweenness, closeness, and eigenvector run on
// the largest connected component only, and only when that component is
// within the scale cutoff.
func AnalyzeCentrality(g *graph.Graph, opts CentralityOptions) *CentralityReport {
	report := &CentralityReport{
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Density:   g.Density(),
		Degree:    make(map[string]float64, g.NodeCount()),
	}

	nodes := g.Nodes()
	for _, node := range nodes {
		report.Degree[node] = float64(g.Degree(node))
	}
	report.TopByDegree = TopNodes(report.Degree, opts.TopN)

	if len(nodes) > 0 {
		sum := 0.0
		minDeg, maxDeg := g.Degree(nodes[0]), g.Degree(nodes[0])
		for _, node := range nodes {
			d := g.Degree(node)
			sum += float64(d)
			if d > maxDeg {
				maxDeg = d
			}
			if d < minDeg {
				minDeg = d
			}
		}
		report.AvgDegree = sum / float64(len(nodes))
		report.MaxDegree = maxDeg
		report.MinDegree = minDeg
	}

	components := ConnectedComponents(g)
	report.ComponentCount = len(components)

	var largest []string
	for _, component := range components {
		if len(component) > len(largest) {
			largest = component
		}
	}
	report.LargestComponentSize = len(largest)
	report.LargestComponentEdges = componentEdgeCount(g, largest)

	if len(largest) > 1 {
		report.AvgClustering = AverageClustering(g, largest)
	}

	if len(largest) == 0 || len(largest) > opts.ScaleCutoff {
		// ScaleExceeded: omit the expensive metrics, flagged explicitly.
		report.PathMetricsAvailable = false
		return report
	}

	report.PathMetricsAvailable = true
	report.Betweenness = betweennessCentrality(g, largest)
	report.Closeness = closenessCentrality(g, largest)

	eigenvector, iterations, converged := eigenvectorCentrality(g, largest, opts.EigenvectorMaxIter, opts.EigenvectorTol)
	report.Eigenvector = eigenvector
	report.EigenvectorIterations = iterations
	report.EigenvectorConverged = converged

	report.TopByBetweenness = TopNodes(report.Betweenness, opts.TopN)
	report.TopByCloseness = TopNodes(report.Closeness, opts.TopN)
	report.TopByEigenvector = TopNodes(report.Eigenvector, opts.TopN)

	return report
}

func componentEdgeCount(g *graph.Graph, component []string) int {
	inComponent := make(map[string]bool, len(component))
	for _, node := range component {
		inComponent[node] = true
	}
	count := 0
	for _, node := range component {
		for neighbor := range g.NeighborWeights(node) {
			if inComponent[neighbor] && node < neighbor {
				count++
			}
		}
	}
	return count
}

// betweennessCentrality runs Brandes' algorithm over the component. Paths
// are unweighted; equal-length shortest paths split credit proportionally
// through the sigma path counts. Scores are normalised by 1/((n-1)(n-2)),
// which folds the undirected double count into the standard pair
// normalisation.
func betweennessCentrality(g *graph.Graph, component []string) map[string]float64 {
	betweenness := make(map[string]float64, len(component))
	for _, node := range component {
		betweenness[node] = 0.0
	}

	for _, source := range component {
		stack := make([]string, 0, len(component))
		predecessors := make(map[string][]string, len(component))
		sigma := map[string]float64{source: 1.0}
		distance := map[string]int{source: 0}

		queue := []string{source}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if _, found := distance[w]; !found {
					distance[w] = distance[v] + 1
					queue = append(queue, w)
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation of pair dependencies
		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				betweenness[w] += delta[w]
			}
		}
	}

	if n := len(component); n > 2 {
		normFactor := 1.0 / float64((n-1)*(n-2))
		for node := range betweenness {
			betweenness[node] *= normFactor
		}
	}

	return betweenness
}

// closenessCentrality computes (n-1)/sum(d) for every node of the component,
// where distances stay within the component. Closeness is undefined across
// components, which is why the caller restricts to one.
func closenessCentrality(g *graph.Graph, component []string) map[string]float64 {
	closeness := make(map[string]float64, len(component))

	for _, source := range component {
		distance := map[string]int{source: 0}
		queue := []string{source}
		totalDistance := 0

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			for _, w := range g.Neighbors(v) {
				if _, found := distance[w]; !found {
					distance[w] = distance[v] + 1
					totalDistance += distance[w]
					queue = append(queue, w)
				}
			}
		}

		if totalDistance > 0 {
			closeness[source] = float64(len(component)-1) / float64(totalDistance)
		} else {
			closeness[source] = 0.0
		}
	}

	return closeness
}

// eigenvectorCentrality runs power iteration on the component's adjacency
// matrix, shifted by the identity so bipartite components still converge.
// The iterate is L2-normalised every step. On budget exhaustion the last
// iterate is returned with converged=false; callers report it flagged
// rather than failing the run.
func eigenvectorCentrality(g *graph.Graph, component []string, maxIter int, tol float64) (map[string]float64, int, bool) {
	n := len(component)
	scores := make(map[string]float64, n)
	if n == 0 {
		return scores, 0, true
	}

	index := make(map[string]int, n)
	for i, node := range component {
		index[node] = i
	}

	adjacency := mat.NewDense(n, n, nil)
	for _, node := range component {
		i := index[node]
		for neighbor := range g.NeighborWeights(node) {
			if j, ok := index[neighbor]; ok {
				adjacency.Set(i, j, 1.0)
			}
		}
	}

	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, 1.0/float64(n))
	}

	next := mat.NewVecDense(n, nil)
	iterations := 0
	converged := false

	for iterations < maxIter {
		iterations++

		// next = (A + I) x
		next.MulVec(adjacency, x)
		next.AddVec(next, x)

		norm := mat.Norm(next, 2)
		if norm == 0 {
			break
		}
		next.ScaleVec(1.0/norm, next)

		diff := 0.0
		for i := 0; i < n; i++ {
			diff += math.Abs(next.AtVec(i) - x.AtVec(i))
		}
		x.CopyVec(next)

		if diff < float64(n)*tol {
			converged = true
			break
		}
	}

	for node, i := range index {
		scores[node] = x.AtVec(i)
	}

	return scores, iterations, converged
}
