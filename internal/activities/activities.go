// Package activities implements the Temporal activities cmd/extractworker
// registers, grounded on the Activities-struct-with-methods shape of
// platform/brain-core/internal/activities and platform/ucl-worker/internal/activities.
package activities

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"go.temporal.io/sdk/activity"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/pipeline"
	"github.com/nucleus/entity-extractor/internal/store"
	"github.com/nucleus/entity-extractor/internal/trace"
)

// ExtractRequest is one document's activity input.
type ExtractRequest struct {
	DocumentID string               `json:"documentId"`
	Text       string               `json:"text"`
	Parsed     model.ParsedDocument `json:"parsed"`
	ConfigName string               `json:"configName"`
}

// ExtractResult is the activity's return value: the run ID the report was
// persisted under, plus summary counts for the workflow to log.
type ExtractResult struct {
	RunID         string `json:"runId"`
	DocumentID    string `json:"documentId"`
	EntityCount   int    `json:"entityCount"`
	SpanCount     int    `json:"spanCount"`
	RejectedCount int    `json:"rejectedCount"`
}

// Activities holds the dependencies the extraction activities share: a
// lexicon bundle loaded once at worker startup and the report sink every
// call persists to. Neither is mutated after construction, so one
// *Activities is safe to register on a worker pool.
type Activities struct {
	bundle *lexicon.Bundle
	sink   store.ReportSink
}

// NewActivities constructs an Activities using bundle for every extraction
// call and sink for every persisted report.
func NewActivities(bundle *lexicon.Bundle, sink store.ReportSink) *Activities {
	return &Activities{bundle: bundle, sink: sink}
}

// ExtractDocument runs the pipeline over one document and persists its
// debug report. It is registered as a Temporal activity; cmd/extractworker's
// workflow fans this out across a batch.
func (a *Activities) ExtractDocument(ctx context.Context, req ExtractRequest) (*ExtractResult, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("extracting document", "documentId", req.DocumentID)

	cfg, err := namedConfig(req.ConfigName)
	if err != nil {
		return nil, err
	}
	cfg.DocID = req.DocumentID

	now := time.Now()
	result := pipeline.Extract(pipeline.Input{Text: req.Text, Parsed: req.Parsed, Config: cfg}, a.bundle, now)

	originalTypes := map[string]model.EntityType{}
	for _, e := range result.Entities {
		originalTypes[e.ID] = e.Type
	}

	runID := xid.New().String()
	report := trace.BuildReport(runID, req.DocumentID, now, result.Entities, result.Spans, result.Stats, originalTypes)
	if err := a.sink.PutReport(ctx, report); err != nil {
		return nil, fmt.Errorf("extractworker: put report for %q: %w", req.DocumentID, err)
	}

	rejected := 0
	for _, n := range result.Stats.RejectReasons {
		rejected += n
	}

	return &ExtractResult{
		RunID:         runID,
		DocumentID:    req.DocumentID,
		EntityCount:   len(result.Entities),
		SpanCount:     len(result.Spans),
		RejectedCount: rejected,
	}, nil
}

func namedConfig(name string) (model.Config, error) {
	switch name {
	case "", "default":
		return model.DefaultConfig(), nil
	case "strict":
		return model.StrictConfig(), nil
	case "permissive":
		return model.PermissiveConfig(), nil
	default:
		return model.Config{}, fmt.Errorf("extractworker: unknown configName %q", name)
	}
}
