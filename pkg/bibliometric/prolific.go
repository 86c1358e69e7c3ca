package bibliometric

import (
	"sort"
	"time"

	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
)

// ProlificAuthor profiles an author who meets the minimum paper count.
type ProlificAuthor struct {
	Author            string       `json:"author"`
	PaperCount        int          `json:"paper_count"`
	PrimaryCategories []LabelCount `json:"primary_categories"`
	ResearchTypes     []LabelCount `json:"research_types"`
	FirstPaperDate    time.Time    `json:"first_paper_date,omitzero"`
	LatestPaperDate   time.Time    `json:"latest_paper_date,omitzero"`
}

// ProlificAuthors profiles every author with at least minPapers papers,
// sorted by paper count descending with name as tiebreak. minPapers
// below 1 is treated as 1.
func (a *Aggregator) ProlificAuthors(papers []corpus.Paper, minPapers int) []ProlificAuthor {
	if minPapers < 1 {
		minPapers = 1
	}

	byAuthor := make(map[string][]*corpus.Paper)
	for i := range papers {
		for _, author := range papers[i].DistinctAuthors() {
			byAuthor[author] = append(byAuthor[author], &papers[i])
		}
	}

	out := make([]ProlificAuthor, 0)
	for author, authored := range byAuthor {
		if len(authored) < minPapers {
			continue
		}

		primaries := make(map[string]int)
		types := make(map[string]int)
		var first, latest time.Time
		for _, p := range authored {
			if p.PrimaryCategory != "" {
				primaries[p.PrimaryCategory]++
			}
			rtype := p.ResearchType
			if rtype == "" {
				rtype = "Other"
			}
			types[rtype]++
			if !p.Published.IsZero() {
				if first.IsZero() || p.Published.Before(first) {
					first = p.Published
				}
				if p.Published.After(latest) {
					latest = p.Published
				}
			}
		}

		out = append(out, ProlificAuthor{
			Author:            author,
			PaperCount:        len(authored),
			PrimaryCategories: topLabels(primaries, 3),
			ResearchTypes:     topLabels(types, 3),
			FirstPaperDate:    first,
			LatestPaperDate:   latest,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PaperCount != out[j].PaperCount {
			return out[i].PaperCount > out[j].PaperCount
		}
		return out[i].Author < out[j].Author
	})
	return out
}
