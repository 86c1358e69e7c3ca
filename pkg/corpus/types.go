package corpus

import (
	"strings"
	"time"
)

// Paper is a single research-paper record. Papers are created at ingestion
// and never mutated by the analytics packages.
//
// Authors carries names exactly as they appear in the source data: no
// deduplication and no normalisation. Two spellings of the same person are
// distinct identities everywhere downstream. Keywords are case-normalised
// at ingestion; a nil Authors or Keywords slice means the field was absent
// from the source record.
type Paper struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Authors         []string  `json:"authors,omitempty"`
	Abstract        string    `json:"abstract,omitempty"`
	Published       time.Time `json:"published,omitzero"`
	Categories      []string  `json:"categories,omitempty"`
	PrimaryCategory string    `json:"primary_category,omitempty"`
	Keywords        []string  `json:"keywords,omitempty"`
	ResearchType    string    `json:"research_type,omitempty"`
}

// HasAuthors reports whether the record carried an authors field.
func (p *Paper) HasAuthors() bool {
	return p.Authors != nil
}

// HasKeywords reports whether the record carried a keywords field.
func (p *Paper) HasKeywords() bool {
	return p.Keywords != nil
}

// DistinctAuthors returns the set of distinct author names on this paper,
// in first-appearance order. The as-given Authors list may repeat a name;
// pairwise counting works on the as-given list, this helper exists for the
// "one distinct author adds no edges" rule.
func (p *Paper) DistinctAuthors() []string {
	if len(p.Authors) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(p.Authors))
	distinct := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		if !seen[a] {
			seen[a] = true
			distinct = append(distinct, a)
		}
	}
	return distinct
}

// Corpus is an immutable snapshot of paper records, the shared input to
// every analysis component. Components read it, nothing mutates it.
type Corpus struct {
	papers []Paper
}

// NewCorpus builds a corpus snapshot from the given records. Records and
// their slice-typed fields are copied, so later edits to the caller's data
// never reach the snapshot and normalisation never reaches the caller.
// Keywords are lower-cased so downstream co-occurrence counting sees one
// spelling per keyword.
func NewCorpus(papers []Paper) *Corpus {
	snapshot := make([]Paper, len(papers))
	copy(snapshot, papers)
	for i := range snapshot {
		snapshot[i].Authors = cloneStrings(snapshot[i].Authors)
		snapshot[i].Categories = cloneStrings(snapshot[i].Categories)
		snapshot[i].Keywords = cloneStrings(snapshot[i].Keywords)
		normalizeKeywords(snapshot[i].Keywords)
	}
	return &Corpus{papers: snapshot}
}

// Papers returns the paper records. Callers must not modify the returned
// slice or its elements.
func (c *Corpus) Papers() []Paper {
	if c == nil {
		return nil
	}
	return c.papers
}

// Len returns the number of papers in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.papers)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func normalizeKeywords(keywords []string) {
	for i, kw := range keywords {
		keywords[i] = strings.ToLower(strings.TrimSpace(kw))
	}
}
