// Package store persists the debug report artefact of spec.md §6 to one of
// several backends, grounded on the storage layers of
// platform/store-core/pkg/{entity,kvstore,logstore}.
package store

import (
	"context"
	"encoding/json"

	"github.com/nucleus/entity-extractor/internal/trace"
)

// ReportSink persists one extraction run's debug report.
type ReportSink interface {
	PutReport(ctx context.Context, report trace.Report) error
}

func marshalReport(report trace.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
