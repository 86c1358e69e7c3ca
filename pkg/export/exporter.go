// Package export writes analysis artifacts to files: GraphML for the
// graphs, JSON/JSONL/CSV for the reports, optionally snappy-compressed.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-bibliometrics/pkg/logging"
	"github.com/dd0wney/cluso-bibliometrics/pkg/metrics"
	"github.com/dd0wney/cluso-bibliometrics/pkg/validation"
)

// Exporter writes analysis artifacts. All writers produce deterministic
// output for a given input so exports can be diffed between runs.
type Exporter struct {
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewExporter returns an exporter. A nil logger disables logging and a
// nil registry disables metrics.
func NewExporter(logger logging.Logger, registry *metrics.Registry) *Exporter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.NewRegistry()
	}
	return &Exporter{logger: logger, metrics: registry}
}

// Export validates the request, opens the target file, and streams the
// artifact through write. With Compress set the payload is wrapped in a
// snappy stream. Parent directories are created as needed.
func (e *Exporter) Export(req *validation.ExportRequest, write func(io.Writer) error) (retErr error) {
	if err := validation.ValidateExportRequest(req); err != nil {
		return err
	}

	defer func() {
		status := "success"
		size := 0
		if retErr != nil {
			status = "error"
		} else if info, err := os.Stat(req.Path); err == nil {
			size = int(info.Size())
		}
		e.metrics.RecordExport(req.Format, status, size)
	}()

	if dir := filepath.Dir(req.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	file, err := os.Create(req.Path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close export file: %w", err)
		}
	}()

	var w io.Writer = file
	if req.Compress {
		sw := snappy.NewBufferedWriter(file)
		defer func() {
			if err := sw.Close(); err != nil && retErr == nil {
				retErr = fmt.Errorf("failed to flush compressed stream: %w", err)
			}
		}()
		w = sw
	}

	if err := write(w); err != nil {
		return err
	}

	e.logger.Info("artifact exported",
		logging.String("format", req.Format),
		logging.Path(req.Path),
		logging.Bool("compressed", req.Compress))
	return nil
}
