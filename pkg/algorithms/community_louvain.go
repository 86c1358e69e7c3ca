package algorithms

import (
	"context"
	"math/rand"
	"sort"

	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

// LouvainDetector runs greedy modularity optimisation: repeated local-move
// passes followed by graph aggregation, until no move improves modularity
// by more than MinGain. Node visit order is shuffled with a fixed seed so
// detection stays reproducible across runs.
type LouvainDetector struct {
	MaxIterations int
	MaxLevels     int
	MinGain       float64
	Seed          int64
}

// NewLouvainDetector returns a detector with the default limits.
func NewLouvainDetector() *LouvainDetector {
	return &LouvainDetector{
		MaxIterations: 100,
		MaxLevels:     10,
		MinGain:       1e-6,
		Seed:          42,
	}
}

// Name returns the strategy name.
func (d *LouvainDetector) Name() string {
	return StrategyLouvain
}

// levelGraph is the working representation for one aggregation level.
// Nodes are dense indices; after the first level each node stands for a
// whole community of the level below.
type levelGraph struct {
	n         int
	neighbors [][]int
	weights   [][]float64
	selfLoops []float64
	degrees   []float64 // weighted degree including self-loops
	total     float64   // sum of all edge weights, self-loops included
}

// Detect partitions the graph. The result lists communities in order of
// first appearance over the lexically sorted node IDs, with members in
// that same order.
func (d *LouvainDetector) Detect(ctx context.Context, g *graph.Graph) (*DetectionResult, error) {
	nodes := g.Nodes()
	lg := buildLevelGraph(g, nodes)

	// membership[i] is the community of original node i in the current level.
	membership := make([]int, lg.n)
	for i := range membership {
		membership[i] = i
	}

	rng := rand.New(rand.NewSource(d.Seed))
	for level := 0; level < d.maxLevels(); level++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		assignment, improved := d.oneLevel(ctx, lg, rng)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !improved {
			break
		}

		assignment = renumber(assignment)
		for i, comm := range membership {
			membership[i] = assignment[comm]
		}
		lg = aggregate(lg, assignment)
		if lg.n <= 1 {
			break
		}
	}

	return buildResult(nodes, membership, d.Name()), nil
}

func (d *LouvainDetector) maxLevels() int {
	if d.MaxLevels > 0 {
		return d.MaxLevels
	}
	return 10
}

func (d *LouvainDetector) maxIterations() int {
	if d.MaxIterations > 0 {
		return d.MaxIterations
	}
	return 100
}

func (d *LouvainDetector) minGain() float64 {
	if d.MinGain > 0 {
		return d.MinGain
	}
	return 1e-6
}

// oneLevel performs local moves until a full pass yields no gain above
// the threshold. Returns the node-to-community assignment and whether
// any node moved.
func (d *LouvainDetector) oneLevel(ctx context.Context, lg *levelGraph, rng *rand.Rand) ([]int, bool) {
	comm := make([]int, lg.n)
	commTotal := make([]float64, lg.n) // sum of degrees per community
	for i := 0; i < lg.n; i++ {
		comm[i] = i
		commTotal[i] = lg.degrees[i]
	}

	order := make([]int, lg.n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	m2 := 2 * lg.total
	if m2 == 0 {
		return comm, false
	}

	improvedEver := false
	neighborWeight := make(map[int]float64, 16)
	for iter := 0; iter < d.maxIterations(); iter++ {
		if ctx.Err() != nil {
			return comm, improvedEver
		}

		moved := false
		for _, node := range order {
			old := comm[node]

			// Weight from node to each neighboring community.
			clear(neighborWeight)
			for k, nbr := range lg.neighbors[node] {
				if nbr == node {
					continue
				}
				neighborWeight[comm[nbr]] += lg.weights[node][k]
			}

			// Remove node from its community before evaluating moves.
			commTotal[old] -= lg.degrees[node]

			best := old
			bestGain := d.minGain()
			baseGain := neighborWeight[old] - lg.degrees[node]*commTotal[old]/m2
			for c, w := range neighborWeight {
				if c == old {
					continue
				}
				gain := w - lg.degrees[node]*commTotal[c]/m2 - baseGain
				if gain > bestGain || (gain == bestGain && best != old && c < best) {
					best = c
					bestGain = gain
				}
			}

			commTotal[best] += lg.degrees[node]
			if best != old {
				comm[node] = best
				moved = true
				improvedEver = true
			}
		}
		if !moved {
			break
		}
	}
	return comm, improvedEver
}

// buildLevelGraph converts the string-keyed graph into dense indices.
// Nodes are ordered lexically so index assignment is deterministic.
func buildLevelGraph(g *graph.Graph, nodes []string) *levelGraph {
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	lg := &levelGraph{
		n:         len(nodes),
		neighbors: make([][]int, len(nodes)),
		weights:   make([][]float64, len(nodes)),
		selfLoops: make([]float64, len(nodes)),
		degrees:   make([]float64, len(nodes)),
	}
	for i, id := range nodes {
		for _, nbr := range g.Neighbors(id) {
			w := float64(g.EdgeWeight(id, nbr))
			lg.neighbors[i] = append(lg.neighbors[i], index[nbr])
			lg.weights[i] = append(lg.weights[i], w)
			lg.degrees[i] += w
		}
	}
	lg.total = g.TotalWeight()
	return lg
}

// renumber compacts community IDs to 0..k-1 in order of first appearance.
func renumber(assignment []int) []int {
	next := 0
	seen := make(map[int]int, len(assignment))
	out := make([]int, len(assignment))
	for i, c := range assignment {
		id, ok := seen[c]
		if !ok {
			id = next
			seen[c] = id
			next++
		}
		out[i] = id
	}
	return out
}

// aggregate collapses each community into a super-node. Edges inside a
// community become self-loops; edges between communities sum their
// weights. The assignment must already be renumbered.
func aggregate(lg *levelGraph, assignment []int) *levelGraph {
	nComm := 0
	for _, c := range assignment {
		if c >= nComm {
			nComm = c + 1
		}
	}

	edges := make([]map[int]float64, nComm)
	agg := &levelGraph{
		n:         nComm,
		neighbors: make([][]int, nComm),
		weights:   make([][]float64, nComm),
		selfLoops: make([]float64, nComm),
		degrees:   make([]float64, nComm),
	}
	for i := range edges {
		edges[i] = make(map[int]float64)
	}

	for node := 0; node < lg.n; node++ {
		from := assignment[node]
		agg.selfLoops[from] += lg.selfLoops[node]
		for k, nbr := range lg.neighbors[node] {
			to := assignment[nbr]
			if to == from {
				// Each internal edge is seen once per endpoint.
				agg.selfLoops[from] += lg.weights[node][k] / 2
				continue
			}
			edges[from][to] += lg.weights[node][k]
		}
	}

	for from := 0; from < nComm; from++ {
		targets := make([]int, 0, len(edges[from]))
		for to := range edges[from] {
			targets = append(targets, to)
		}
		sort.Ints(targets)
		for _, to := range targets {
			w := edges[from][to]
			agg.neighbors[from] = append(agg.neighbors[from], to)
			agg.weights[from] = append(agg.weights[from], w)
			agg.degrees[from] += w
		}
		agg.degrees[from] += 2 * agg.selfLoops[from]
		agg.total += agg.selfLoops[from]
	}
	for from := 0; from < nComm; from++ {
		for _, w := range agg.weights[from] {
			agg.total += w / 2
		}
	}
	return agg
}

// buildResult maps the final membership back to node IDs, renumbering
// communities by first appearance over the sorted node list.
func buildResult(nodes []string, membership []int, strategy string) *DetectionResult {
	membership = renumber(membership)

	nComm := 0
	for _, c := range membership {
		if c >= nComm {
			nComm = c + 1
		}
	}

	result := &DetectionResult{
		Communities:   make([]Community, nComm),
		NodeCommunity: make(map[string]int, len(nodes)),
		Strategy:      strategy,
	}
	for i := range result.Communities {
		result.Communities[i].ID = i
	}
	for i, id := range nodes {
		c := membership[i]
		result.Communities[c].Members = append(result.Communities[c].Members, id)
		result.NodeCommunity[id] = c
	}
	return result
}
