package bibliometric

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
	"github.com/dd0wney/cluso-bibliometrics/pkg/logging"
)

// Aggregator computes corpus-level bibliometric statistics. Pair counting
// follows the collaboration-graph rules exactly, so top collaboration
// counts always match the corresponding edge weights.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator returns an aggregator. A nil logger disables logging.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Aggregator{logger: logger}
}

// Analyze produces the full bibliometric report for the corpus.
func (a *Aggregator) Analyze(papers []corpus.Paper) *Report {
	timer := logging.StartTimer(a.logger, "bibliometric analysis",
		logging.Papers(len(papers)))
	defer timer.End()

	report := &Report{
		AuthorProductivity:   a.AuthorProductivity(papers),
		Collaboration:        a.CollaborationPatterns(papers),
		CategoryDistribution: a.CategoryDistribution(papers),
		Keywords:             a.KeywordStats(papers),
		ResearchTypes:        a.ResearchTypes(papers),
	}
	report.Summary = Summary{
		TotalPapers:            len(papers),
		TotalAuthors:           report.AuthorProductivity.TotalAuthors,
		AverageAuthorsPerPaper: report.Collaboration.MeanAuthorsPerPaper,
		TotalCategories:        report.CategoryDistribution.TotalCategories,
		TotalKeywords:          report.Keywords.TotalKeywords,
	}
	return report
}

// AuthorProductivity counts papers per author. An author listed more than
// once on the same paper is credited once for it, matching how node
// weights accumulate in the collaboration graph.
func (a *Aggregator) AuthorProductivity(papers []corpus.Paper) AuthorProductivity {
	paperCounts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i := range papers {
		for _, author := range papers[i].DistinctAuthors() {
			if _, ok := firstSeen[author]; !ok {
				firstSeen[author] = len(firstSeen)
			}
			paperCounts[author]++
		}
	}

	stats := AuthorProductivity{
		TotalAuthors: len(paperCounts),
		TotalPapers:  len(papers),
	}
	if len(paperCounts) == 0 {
		return stats
	}

	counts := make([]float64, 0, len(paperCounts))
	for _, c := range paperCounts {
		counts = append(counts, float64(c))
		if c > stats.PapersPerAuthorMax {
			stats.PapersPerAuthorMax = c
		}
		if c == 1 {
			stats.SinglePaperAuthors++
		} else {
			stats.MultiPaperAuthors++
		}
	}
	stats.PapersPerAuthorMean = stat.Mean(counts, nil)
	stats.PapersPerAuthorMedian = median(counts)

	ranked := make([]AuthorCount, 0, len(paperCounts))
	for author, c := range paperCounts {
		ranked = append(ranked, AuthorCount{Author: author, Papers: c})
	}
	// Ties keep corpus first-appearance order.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Papers != ranked[j].Papers {
			return ranked[i].Papers > ranked[j].Papers
		}
		return firstSeen[ranked[i].Author] < firstSeen[ranked[j].Author]
	})
	stats.Top10Authors = truncateAuthors(ranked, 10)
	stats.Top20Authors = truncateAuthors(ranked, 20)

	a.logger.Info("author productivity computed",
		logging.Count(stats.TotalAuthors))
	return stats
}

// CollaborationPatterns summarises team sizes and co-authorship pairs.
// Team size is the author list as given; pair counting walks ordered
// pairs and skips identical names, mirroring graph edge accumulation.
func (a *Aggregator) CollaborationPatterns(papers []corpus.Paper) CollaborationPatterns {
	stats := CollaborationPatterns{}
	if len(papers) == 0 {
		return stats
	}

	teamSizes := make([]float64, 0, len(papers))
	var multiSizes []float64
	pairs := make(map[[2]string]int)

	for i := range papers {
		authors := papers[i].Authors
		size := len(authors)
		teamSizes = append(teamSizes, float64(size))
		if size > stats.MaxAuthorsPerPaper {
			stats.MaxAuthorsPerPaper = size
		}
		if i == 0 || size < stats.MinAuthorsPerPaper {
			stats.MinAuthorsPerPaper = size
		}
		if size == 1 {
			stats.SingleAuthorPapers++
		} else if size > 1 {
			stats.MultiAuthorPapers++
			multiSizes = append(multiSizes, float64(size))
		}

		for x := 0; x < len(authors); x++ {
			for y := x + 1; y < len(authors); y++ {
				if authors[x] == authors[y] {
					continue
				}
				key := [2]string{authors[x], authors[y]}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				pairs[key]++
			}
		}
	}

	stats.MeanAuthorsPerPaper = stat.Mean(teamSizes, nil)
	stats.MedianAuthorsPerPaper = median(teamSizes)
	if len(multiSizes) > 0 {
		stats.CollaborationIndex = stat.Mean(multiSizes, nil)
	}
	stats.TotalCoauthorPairs = len(pairs)
	stats.TopCollaborations = topPairs(pairs, 10)

	a.logger.Info("collaboration patterns computed",
		logging.Float64("mean_authors_per_paper", stats.MeanAuthorsPerPaper))
	return stats
}

// CategoryDistribution counts subject categories across the corpus.
func (a *Aggregator) CategoryDistribution(papers []corpus.Paper) CategoryDistribution {
	categoryCounts := make(map[string]int)
	primaryCounts := make(map[string]int)
	crossCategory := 0

	for i := range papers {
		for _, cat := range papers[i].Categories {
			categoryCounts[cat]++
		}
		if primary := papers[i].PrimaryCategory; primary != "" {
			primaryCounts[primary]++
		}
		if len(papers[i].Categories) > 1 {
			crossCategory++
		}
	}

	stats := CategoryDistribution{
		TotalCategories:     len(categoryCounts),
		CategoryCounts:      categoryCounts,
		PrimaryCounts:       primaryCounts,
		Top5Categories:      topLabels(categoryCounts, 5),
		Top10Categories:     topLabels(categoryCounts, 10),
		CrossCategoryPapers: crossCategory,
	}
	if len(papers) > 0 {
		stats.CrossCategoryRatio = float64(crossCategory) / float64(len(papers))
	}

	a.logger.Info("category distribution computed",
		logging.Count(stats.TotalCategories))
	return stats
}

// KeywordStats counts keyword frequency and pairwise co-occurrence.
func (a *Aggregator) KeywordStats(papers []corpus.Paper) KeywordStats {
	frequency := make(map[string]int)
	pairs := make(map[[2]string]int)

	for i := range papers {
		keywords := papers[i].Keywords
		for _, kw := range keywords {
			frequency[kw]++
		}
		for x := 0; x < len(keywords); x++ {
			for y := x + 1; y < len(keywords); y++ {
				if keywords[x] == keywords[y] {
					continue
				}
				key := [2]string{keywords[x], keywords[y]}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				pairs[key]++
			}
		}
	}

	stats := KeywordStats{
		TotalKeywords:   len(frequency),
		Frequency:       frequency,
		Top20Keywords:   topKeywords(frequency, 20),
		Top50Keywords:   topKeywords(frequency, 50),
		TopKeywordPairs: topPairs(pairs, 20),
	}

	a.logger.Info("keyword statistics computed",
		logging.Count(stats.TotalKeywords))
	return stats
}

// ResearchTypes counts research-type labels. Papers without one count
// under "Other".
func (a *Aggregator) ResearchTypes(papers []corpus.Paper) ResearchTypes {
	counts := make(map[string]int)
	for i := range papers {
		rtype := papers[i].ResearchType
		if rtype == "" {
			rtype = "Other"
		}
		counts[rtype]++
	}

	stats := ResearchTypes{
		Counts:         counts,
		Percentages:    make(map[string]float64, len(counts)),
		MostCommonType: LabelCount{Label: "None"},
	}
	if len(papers) == 0 {
		return stats
	}

	for rtype, count := range counts {
		stats.Percentages[rtype] = float64(count) / float64(len(papers)) * 100
	}
	if top := topLabels(counts, 1); len(top) > 0 {
		stats.MostCommonType = top[0]
	}
	return stats
}

// median returns the linear-interpolated median. The input slice is
// sorted in place.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	return stat.Quantile(0.5, stat.LinInterp, values, nil)
}

func truncateAuthors(ranked []AuthorCount, n int) []AuthorCount {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]AuthorCount, len(ranked))
	copy(out, ranked)
	return out
}

func topPairs(pairs map[[2]string]int, n int) []PairCount {
	out := make([]PairCount, 0, len(pairs))
	for key, count := range pairs {
		out = append(out, PairCount{First: key[0], Second: key[1], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topKeywords(frequency map[string]int, n int) []KeywordCount {
	out := make([]KeywordCount, 0, len(frequency))
	for kw, count := range frequency {
		out = append(out, KeywordCount{Keyword: kw, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topLabels(counts map[string]int, n int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
