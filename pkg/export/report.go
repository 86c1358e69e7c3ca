package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dd0wney/cluso-bibliometrics/pkg/bibliometric"
)

// WriteJSON writes any report value as JSON.
func (e *Exporter) WriteJSON(w io.Writer, v any, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// WriteJSONL writes one JSON object per line.
func (e *Exporter) WriteJSONL(w io.Writer, records []any) error {
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// WriteAuthorStatsCSV writes the ranked author list as CSV.
func (e *Exporter) WriteAuthorStatsCSV(w io.Writer, authors []bibliometric.AuthorCount) (retErr error) {
	csvWriter := csv.NewWriter(w)
	defer func() {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil && retErr == nil {
			retErr = fmt.Errorf("CSV writer flush error: %w", err)
		}
	}()

	if err := csvWriter.Write([]string{"author", "paper_count"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, a := range authors {
		record := []string{a.Author, strconv.Itoa(a.Papers)}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}
