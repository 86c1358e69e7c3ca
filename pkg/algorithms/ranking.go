package algorithms

import (
	"container/heap"
	"sort"
)

// RankedNode holds a node identifier with its metric score.
type RankedNode struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode so the root is always
// the weakest candidate: lowest score, and among equal scores the lexically
// greatest identifier (the one a better-tied candidate should evict).
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].ID > h[j].ID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// beats reports whether candidate should replace the current heap minimum.
func (h rankedNodeHeap) beats(candidate RankedNode) bool {
	if candidate.Score != h[0].Score {
		return candidate.Score > h[0].Score
	}
	return candidate.ID < h[0].ID
}

// TopNodes returns the top n nodes by score using a min-heap, O(V log n).
// It serves every ranked list in the reports.
// Output is sorted descending by score with ties broken by ascending lexical
// order of the identifier, so rankings are deterministic.
func TopNodes(scores map[string]float64, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for id, score := range scores {
		rn := RankedNode{ID: id, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if h.beats(rn) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].ID < result[j].ID
	})

	return result
}
