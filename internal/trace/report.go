// Package trace builds the persisted JSON debug report of spec.md §6 and
// provides SpanTracer, an append-only per-stage binary log writer. The
// TRACE_SPANS toggle is read by internal/config, but no caller in this
// module constructs a SpanTracer from it.
package trace

import (
	"time"

	"github.com/nucleus/entity-extractor/internal/model"
)

// Report is the debug artefact of spec.md §6. Field names are
// binary-exact: downstream review tooling depends on this JSON shape.
type Report struct {
	RunID              string                 `json:"run_id"`
	DocumentID         string                 `json:"document_id"`
	CreatedAt          time.Time              `json:"created_at"`
	Summary            Summary                `json:"summary"`
	Entities           []EntityReport         `json:"entities"`
	ExtractionMetadata map[string]interface{} `json:"extraction_metadata"`
}

// Summary holds the counts surfaced in a debug report.
type Summary struct {
	Counts map[string]int `json:"counts"`
}

// EntityReport is one entity's row in the debug report.
type EntityReport struct {
	ID           string   `json:"id"`
	OriginalType string   `json:"original_type"`
	FinalType    string   `json:"final_type"`
	Rejected     bool     `json:"rejected"`
	Name         string   `json:"name"`
	Spans        [][2]int `json:"spans"`
	Notes        []string `json:"notes"`
	Issues       []string `json:"issues"`
}

// BuildReport assembles a Report from the pipeline's final entity/span set
// and stats. originalTypes records each entity's pre-postprocess type
// (captured by the caller before any merge could change it), keyed by
// entity ID.
func BuildReport(runID, docID string, created time.Time, entities []model.Entity, spans []model.EntitySpan, stats *model.ExtractionStats, originalTypes map[string]model.EntityType) Report {
	spansByEntity := map[string][][2]int{}
	for _, s := range spans {
		spansByEntity[s.EntityID] = append(spansByEntity[s.EntityID], [2]int{s.Start, s.End})
	}

	rows := make([]EntityReport, 0, len(entities))
	for _, e := range entities {
		original := string(e.Type)
		if t, ok := originalTypes[e.ID]; ok {
			original = string(t)
		}
		var notes []string
		if e.Attrs.HeadwordSignal != nil {
			notes = append(notes, "type inferred from headword signal")
		}
		var issues []string
		if e.Confidence < 0.6 {
			issues = append(issues, model.TypeInferenceUnderdetermined)
		}
		rows = append(rows, EntityReport{
			ID:           e.ID,
			OriginalType: original,
			FinalType:    string(e.Type),
			Rejected:     false,
			Name:         e.Canonical,
			Spans:        spansByEntity[e.ID],
			Notes:        notes,
			Issues:       issues,
		})
	}

	counts := map[string]int{
		"entities":            len(entities),
		"spans":               len(spans),
		"aliases_attached":    stats.AliasesAttached,
		"underdetermined":     stats.Underdetermined,
		"clusters_singleton":  stats.ClustersSingleton,
		"clusters_multi":      stats.ClustersMulti,
	}
	for reason, n := range stats.RejectReasons {
		counts["reject:"+string(reason)] = n
	}

	return Report{
		RunID:              runID,
		DocumentID:         docID,
		CreatedAt:          created,
		Summary:            Summary{Counts: counts},
		Entities:           rows,
		ExtractionMetadata: map[string]interface{}{},
	}
}
