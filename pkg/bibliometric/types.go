package bibliometric

// AuthorCount pairs an author with the number of papers they appear on.
type AuthorCount struct {
	Author string `json:"author"`
	Papers int    `json:"papers"`
}

// PairCount is a canonical author or keyword pair with its co-occurrence
// count. First sorts before Second lexically.
type PairCount struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Count  int    `json:"count"`
}

// KeywordCount pairs a keyword with its corpus-wide frequency.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// LabelCount is a generic label/frequency pair used for categories and
// research types.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AuthorProductivity summarises papers-per-author statistics.
type AuthorProductivity struct {
	TotalAuthors          int           `json:"total_authors"`
	TotalPapers           int           `json:"total_papers"`
	PapersPerAuthorMean   float64       `json:"papers_per_author_mean"`
	PapersPerAuthorMedian float64       `json:"papers_per_author_median"`
	PapersPerAuthorMax    int           `json:"papers_per_author_max"`
	Top10Authors          []AuthorCount `json:"top_10_authors"`
	Top20Authors          []AuthorCount `json:"top_20_authors"`
	SinglePaperAuthors    int           `json:"single_paper_authors"`
	MultiPaperAuthors     int           `json:"multi_paper_authors"`
}

// CollaborationPatterns summarises team-size and co-authorship statistics.
// CollaborationIndex is the mean team size over multi-author papers only.
type CollaborationPatterns struct {
	MeanAuthorsPerPaper   float64     `json:"mean_authors_per_paper"`
	MedianAuthorsPerPaper float64     `json:"median_authors_per_paper"`
	MaxAuthorsPerPaper    int         `json:"max_authors_per_paper"`
	MinAuthorsPerPaper    int         `json:"min_authors_per_paper"`
	SingleAuthorPapers    int         `json:"single_author_papers"`
	MultiAuthorPapers     int         `json:"multi_author_papers"`
	CollaborationIndex    float64     `json:"collaboration_index"`
	TotalCoauthorPairs    int         `json:"total_coauthor_pairs"`
	TopCollaborations     []PairCount `json:"top_collaborations"`
}

// CategoryDistribution summarises subject-category usage across the corpus.
type CategoryDistribution struct {
	TotalCategories     int            `json:"total_categories"`
	CategoryCounts      map[string]int `json:"category_distribution"`
	PrimaryCounts       map[string]int `json:"primary_category_distribution"`
	Top5Categories      []LabelCount   `json:"top_5_categories"`
	Top10Categories     []LabelCount   `json:"top_10_categories"`
	CrossCategoryPapers int            `json:"cross_category_papers"`
	CrossCategoryRatio  float64        `json:"cross_category_ratio"`
}

// KeywordStats summarises keyword frequency and pairwise co-occurrence.
type KeywordStats struct {
	TotalKeywords   int            `json:"total_keywords"`
	Top20Keywords   []KeywordCount `json:"top_20_keywords"`
	Top50Keywords   []KeywordCount `json:"top_50_keywords"`
	Frequency       map[string]int `json:"keyword_frequency"`
	TopKeywordPairs []PairCount    `json:"top_keyword_pairs"`
}

// ResearchTypes summarises the research-type labels attached to papers.
// Papers without a label count under "Other".
type ResearchTypes struct {
	Counts         map[string]int     `json:"research_type_counts"`
	Percentages    map[string]float64 `json:"research_type_percentages"`
	MostCommonType LabelCount         `json:"most_common_type"`
}

// Summary is the headline block of a full report.
type Summary struct {
	TotalPapers            int     `json:"total_papers"`
	TotalAuthors           int     `json:"total_authors"`
	AverageAuthorsPerPaper float64 `json:"average_authors_per_paper"`
	TotalCategories        int     `json:"total_categories"`
	TotalKeywords          int     `json:"total_keywords"`
}

// Report is the complete bibliometric analysis of one corpus.
type Report struct {
	AuthorProductivity   AuthorProductivity    `json:"author_productivity"`
	Collaboration        CollaborationPatterns `json:"collaboration_patterns"`
	CategoryDistribution CategoryDistribution  `json:"category_distribution"`
	Keywords             KeywordStats          `json:"keywords"`
	ResearchTypes        ResearchTypes         `json:"research_types"`
	Summary              Summary               `json:"summary"`
}
