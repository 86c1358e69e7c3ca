package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadReader decodes a JSON array of paper records into a corpus snapshot.
// Records with missing authors or keywords fields are kept as-is; they
// contribute empty node lists downstream rather than failing the load.
func LoadReader(r io.Reader) (*Corpus, error) {
	var papers []Paper
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&papers); err != nil {
		return nil, fmt.Errorf("decode papers: %w", err)
	}
	return NewCorpus(papers), nil
}

// LoadFile reads a corpus from a JSON file on disk.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	c, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("load corpus from %s: %w", path, err)
	}
	return c, nil
}
