package postprocess

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

var eventKeywords = map[string]bool{
	"battle": true, "war": true, "siege": true, "conflict": true,
	"skirmish": true, "campaign": true,
}

// FuseEventOf merges an event-keyword entity immediately followed by " of "
// and another entity's span into a single EVENT span covering both, per
// spec.md §4.7. docText supplies the literal text between spans so the
// " of " connective can be verified.
func FuseEventOf(entities []model.Entity, spans []model.EntitySpan, docText string) ([]model.Entity, []model.EntitySpan) {
	typeByID := make(map[string]model.EntityType, len(entities))
	for _, e := range entities {
		typeByID[e.ID] = e.Type
	}
	model.SortSpans(spans)

	for i := 0; i < len(spans); i++ {
		a := spans[i]
		first := strings.ToLower(strings.Fields(a.Surface)[0])
		if !eventKeywords[first] {
			continue
		}
		for j := 0; j < len(spans); j++ {
			if i == j {
				continue
			}
			b := spans[j]
			if b.Start <= a.End {
				continue
			}
			between := safeSlice(docText, a.End, b.Start)
			if strings.TrimSpace(between) != "of" {
				continue
			}
			entities, spans = fuseEventSpans(entities, spans, a, b)
			break
		}
	}
	return entities, spans
}

func safeSlice(s string, start, end int) string {
	if start < 0 || end > len(s) || start > end {
		return ""
	}
	return s[start:end]
}

func fuseEventSpans(entities []model.Entity, spans []model.EntitySpan, a, b model.EntitySpan) ([]model.Entity, []model.EntitySpan) {
	idx := -1
	for i, e := range entities {
		if e.ID == a.EntityID {
			idx = i
		}
	}
	if idx == -1 {
		return entities, spans
	}
	entities[idx].Type = model.TypeEvent
	entities[idx].Canonical = a.Surface + " of " + b.Surface

	entities, spans = mergeEntity(entities, spans, a.EntityID, b.EntityID)

	out := make([]model.EntitySpan, 0, len(spans))
	for _, s := range spans {
		if s.Start == a.Start && s.End == a.End {
			s.End = b.End
			s.Surface = a.Surface + " of " + b.Surface
		} else if s.Start == b.Start && s.End == b.End {
			continue
		}
		out = append(out, s)
	}
	return entities, out
}
