package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
)

const (
	maxSummaryMembers    = 10
	maxSummaryCategories = 5
)

// CategoryCount pairs a category label with its frequency.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CommunitySummary describes one community that survived the size filter.
type CommunitySummary struct {
	ID            int             `json:"id"`
	Size          int             `json:"size"`
	PaperCount    int             `json:"n_papers"`
	TopMembers    []string        `json:"top_members"`
	TopCategories []CategoryCount `json:"top_categories"`
}

// CommunityReport is the filtered view of a detection result: communities
// below the minimum size are dropped, and modularity is computed over the
// surviving partition against the full graph.
type CommunityReport struct {
	NumCommunities int                `json:"n_communities"`
	Communities    []CommunitySummary `json:"communities"`
	Modularity     float64            `json:"modularity"`
	Strategy       string             `json:"strategy"`
}

// BuildCommunityReport filters and summarises a detection result.
// minSize <= 1 keeps every community. Summary IDs are reassigned
// contiguously over the surviving communities, ordered by descending
// size with the original ID breaking ties.
func BuildCommunityReport(g *graph.Graph, result *DetectionResult, papers []corpus.Paper, minSize int) *CommunityReport {
	kept := make([]Community, 0, len(result.Communities))
	for i := range result.Communities {
		if result.Communities[i].Size() >= minSize || minSize <= 1 {
			kept = append(kept, result.Communities[i])
		}
	}
	sort.SliceStable(kept, func(a, b int) bool {
		if kept[a].Size() != kept[b].Size() {
			return kept[a].Size() > kept[b].Size()
		}
		return kept[a].ID < kept[b].ID
	})

	report := &CommunityReport{
		NumCommunities: len(kept),
		Communities:    make([]CommunitySummary, 0, len(kept)),
		Modularity:     Modularity(g, kept),
		Strategy:       result.Strategy,
	}
	for i := range kept {
		report.Communities = append(report.Communities, summarize(i, &kept[i], papers))
	}
	return report
}

func summarize(id int, c *Community, papers []corpus.Paper) CommunitySummary {
	members := make(map[string]struct{}, len(c.Members))
	for _, m := range c.Members {
		members[m] = struct{}{}
	}

	paperCount := 0
	categories := make(map[string]int)
	for i := range papers {
		touches := false
		for _, author := range papers[i].Authors {
			if _, ok := members[author]; ok {
				touches = true
				break
			}
		}
		if !touches {
			continue
		}
		paperCount++
		for _, cat := range papers[i].Categories {
			categories[cat]++
		}
	}

	top := c.Members
	if len(top) > maxSummaryMembers {
		top = top[:maxSummaryMembers]
	}
	topMembers := make([]string, len(top))
	copy(topMembers, top)

	return CommunitySummary{
		ID:            id,
		Size:          c.Size(),
		PaperCount:    paperCount,
		TopMembers:    topMembers,
		TopCategories: topCategories(categories, maxSummaryCategories),
	}
}

func topCategories(counts map[string]int, n int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for cat, count := range counts {
		out = append(out, CategoryCount{Category: cat, Count: count})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Category < out[b].Category
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
