package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nucleus/entity-extractor/internal/trace"
)

// LocalSink writes each report to <dir>/<run_id>.json. It is the default
// sink when REPORT_SINK is unset.
type LocalSink struct {
	Dir string
}

// NewLocalSink returns a LocalSink rooted at dir, creating dir if needed.
func NewLocalSink(dir string) (*LocalSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create report dir %q: %w", dir, err)
	}
	return &LocalSink{Dir: dir}, nil
}

// PutReport writes report to disk as pretty-printed JSON.
func (s *LocalSink) PutReport(ctx context.Context, report trace.Report) error {
	b, err := marshalReport(report)
	if err != nil {
		return fmt.Errorf("store: marshal report: %w", err)
	}
	path := filepath.Join(s.Dir, report.RunID+".json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("store: write report %q: %w", path, err)
	}
	return nil
}
