package export

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-bibliometrics/pkg/bibliometric"
	"github.com/dd0wney/cluso-bibliometrics/pkg/corpus"
	"github.com/dd0wney/cluso-bibliometrics/pkg/graph"
	"github.com/dd0wney/cluso-bibliometrics/pkg/validation"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	papers := []corpus.Paper{
		{ID: "p1", Authors: []string{"Alice", "Bob"}},
		{ID: "p2", Authors: []string{"Alice", "Bob"}},
		{ID: "p3", Authors: []string{"Bob", "Charlie"}},
	}
	g, err := graph.Build(papers, graph.Authors, 1)
	require.NoError(t, err)
	return g
}

func TestExportJSONFile(t *testing.T) {
	e := NewExporter(nil, nil)
	path := filepath.Join(t.TempDir(), "report.json")

	payload := map[string]int{"n_authors": 3}
	err := e.Export(&validation.ExportRequest{Format: "json", Path: path}, func(w io.Writer) error {
		return e.WriteJSON(w, payload, true)
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestExportCompressed(t *testing.T) {
	e := NewExporter(nil, nil)
	path := filepath.Join(t.TempDir(), "report.json")

	err := e.Export(&validation.ExportRequest{Format: "json", Path: path, Compress: true}, func(w io.Writer) error {
		return e.WriteJSON(w, map[string]string{"strategy": "louvain"}, false)
	})
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	decompressed, err := io.ReadAll(snappy.NewReader(file))
	require.NoError(t, err)
	assert.Contains(t, string(decompressed), "louvain")
}

func TestExportCreatesParentDirectories(t *testing.T) {
	e := NewExporter(nil, nil)
	path := filepath.Join(t.TempDir(), "nested", "deep", "report.json")

	err := e.Export(&validation.ExportRequest{Format: "json", Path: path}, func(w io.Writer) error {
		return e.WriteJSON(w, struct{}{}, false)
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportRejectsInvalidRequest(t *testing.T) {
	e := NewExporter(nil, nil)

	err := e.Export(&validation.ExportRequest{Format: "xml", Path: "out.xml"}, func(w io.Writer) error {
		return nil
	})
	require.Error(t, err)

	err = e.Export(nil, func(w io.Writer) error { return nil })
	require.Error(t, err)
}

func TestWriteGraphML(t *testing.T) {
	e := NewExporter(nil, nil)
	g := testGraph(t)

	var buf bytes.Buffer
	require.NoError(t, e.WriteGraphML(&buf, g, "coauthorship"))

	out := buf.String()
	assert.Contains(t, out, `<graph id="coauthorship" edgedefault="undirected">`)
	assert.Contains(t, out, `<node id="Alice">`)
	assert.Contains(t, out, `<edge source="Alice" target="Bob">`)
	// Alice-Bob collaborated twice.
	assert.Contains(t, out, `<data key="d1">2</data>`)
	// Bob appears on all three papers.
	assert.Contains(t, out, `<data key="d0">3</data>`)
}

func TestWriteGraphMLDeterministic(t *testing.T) {
	e := NewExporter(nil, nil)
	g := testGraph(t)

	var first, second bytes.Buffer
	require.NoError(t, e.WriteGraphML(&first, g, "g"))
	require.NoError(t, e.WriteGraphML(&second, g, "g"))
	assert.Equal(t, first.String(), second.String())
}

func TestWriteJSONL(t *testing.T) {
	e := NewExporter(nil, nil)

	var buf bytes.Buffer
	records := []any{
		map[string]string{"author": "Alice"},
		map[string]string{"author": "Bob"},
	}
	require.NoError(t, e.WriteJSONL(&buf, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, json.Valid([]byte(line)), "line %q is not valid JSON", line)
	}
}

func TestWriteAuthorStatsCSV(t *testing.T) {
	e := NewExporter(nil, nil)

	var buf bytes.Buffer
	authors := []bibliometric.AuthorCount{
		{Author: "Alice", Papers: 3},
		{Author: "Bob", Papers: 1},
	}
	require.NoError(t, e.WriteAuthorStatsCSV(&buf, authors))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "author,paper_count", lines[0])
	assert.Equal(t, "Alice,3", lines[1])
	assert.Equal(t, "Bob,1", lines[2])
}
