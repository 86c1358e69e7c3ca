package graph

import (
	"errors"
	"fmt"

	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
)

// ErrInvalidMinWeight is returned when an edge threshold below 1 is supplied.
var ErrInvalidMinWeight = errors.New("minimum edge weight must be at least 1")

// Extractor maps a paper to its node identifiers for one graph kind.
type Extractor func(p corpus.Paper) []string

// Authors extracts the as-given author name list. Names are not
// deduplicated or normalised; a missing authors field yields nil.
func Authors(p corpus.Paper) []string {
	return p.Authors
}

// Keywords extracts the paper's keyword list (case-normalised at corpus
// ingestion); a missing keywords field yields nil.
func Keywords(p corpus.Paper) []string {
	return p.Keywords
}

// pairKey is an unordered node pair in canonical order (A < B).
type pairKey struct {
	A, B string
}

func canonicalPair(a, b string) pairKey {
	if a < b {
		return pairKey{A: a, B: b}
	}
	return pairKey{A: b, B: a}
}

// Build constructs a weighted undirected graph from the papers.
//
// Node weights count one occurrence per paper per distinct identifier.
// Pairwise counters walk the as-given list: every unordered pair of
// distinct identifiers at positions i < j adds 1. The source data does not
// deduplicate repeated author names within one paper, so a paper listing a
// name twice double-counts its pairs with that name; that is preserved here
// as a corpus data-quality assumption rather than corrected. Identical
// pairs are skipped, so the graph never contains self-loops.
//
// An edge appears in the result only when its accumulated counter reaches
// minWeight; the edge weight is the full counter value. A paper with a
// single distinct identifier contributes no edges. An empty corpus yields
// an empty graph.
func Build(papers []corpus.Paper, extract Extractor, minWeight int) (*Graph, error) {
	if minWeight < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMinWeight, minWeight)
	}

	g := NewGraph()
	pairCounts := make(map[pairKey]int)

	for _, paper := range papers {
		ids := extract(paper)
		if len(ids) == 0 {
			// Missing or empty field: the paper contributes nothing,
			// never an error.
			continue
		}

		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				g.addNodeOccurrence(id)
			}
		}

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if ids[i] == ids[j] {
					continue
				}
				pairCounts[canonicalPair(ids[i], ids[j])]++
			}
		}
	}

	for pair, count := range pairCounts {
		if count >= minWeight {
			g.addEdge(pair.A, pair.B, count)
		}
	}

	return g, nil
}
