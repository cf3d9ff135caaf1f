// Package workflows defines the Temporal workflows cmd/extractworker
// registers, grounded on the activity-options-plus-ExecuteActivity shape of
// apps/metadata-api-go/internal/temporal/workflows.go. This is the one place
// in the module allowed to introduce workflow-level concurrency: the
// pipeline itself (internal/pipeline) stays single-threaded per spec.md §5.
package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/nucleus/entity-extractor/internal/activities"
)

// BatchExtractWorkflow is the workflow name cmd/extractworker registers and
// a Temporal client starts by name.
const BatchExtractWorkflow = "batchExtractWorkflow"

var activityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: 10 * time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    time.Second,
		BackoffCoefficient: 2.0,
		MaximumInterval:    time.Minute,
		MaximumAttempts:    3,
	},
}

// BatchExtractInput is one batch run's input: every document to extract in
// this workflow execution (each request names its own promotion config),
// plus the maximum number of extraction activities to run at once.
type BatchExtractInput struct {
	Documents   []activities.ExtractRequest `json:"documents"`
	MaxInFlight int                         `json:"maxInFlight"`
}

// BatchExtractResult collects each document's activity result, in the same
// order as BatchExtractInput.Documents. A nil entry marks a document whose
// activity failed after retries; the workflow does not fail the whole batch
// for one bad document.
type BatchExtractResult struct {
	Results []*activities.ExtractResult `json:"results"`
	Failed  []string                    `json:"failed"`
}

// BatchExtractWorkflowFunc fans ExtractDocument out across input.Documents
// in windows of MaxInFlight concurrent activities (a Temporal Future pool,
// not a goroutine inside the pipeline itself, which stays single-threaded).
func BatchExtractWorkflowFunc(ctx workflow.Context, input BatchExtractInput) (*BatchExtractResult, error) {
	logger := workflow.GetLogger(ctx)
	actCtx := workflow.WithActivityOptions(ctx, activityOptions)

	maxInFlight := input.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = 4
	}

	results := make([]*activities.ExtractResult, len(input.Documents))
	var failed []string

	for start := 0; start < len(input.Documents); start += maxInFlight {
		end := start + maxInFlight
		if end > len(input.Documents) {
			end = len(input.Documents)
		}
		window := input.Documents[start:end]
		futures := make([]workflow.Future, len(window))
		for i, doc := range window {
			futures[i] = workflow.ExecuteActivity(actCtx, "ExtractDocument", doc)
		}
		for i, doc := range window {
			var res activities.ExtractResult
			if err := futures[i].Get(ctx, &res); err != nil {
				logger.Error("extract activity failed", "documentId", doc.DocumentID, "error", err)
				failed = append(failed, doc.DocumentID)
				continue
			}
			results[start+i] = &res
		}
	}

	logger.Info("batch extract complete", "documents", len(input.Documents), "failed", len(failed))
	return &BatchExtractResult{Results: results, Failed: failed}, nil
}
