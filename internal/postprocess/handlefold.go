package postprocess

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/normalize"
)

// FoldSocialHandles folds every `@handle` entity into the entity of the
// corresponding bare display name, converting underscore-delimited handles
// to display form and keeping both as aliases (spec.md §4.7).
func FoldSocialHandles(entities []model.Entity, spans []model.EntitySpan) ([]model.Entity, []model.EntitySpan) {
	byDisplay := map[string]string{}
	for _, e := range entities {
		byDisplay[strings.ToLower(e.Canonical)] = e.ID
	}

	for _, e := range entities {
		if !strings.HasPrefix(e.Canonical, "@") {
			continue
		}
		display := displayNameForHandle(e.Canonical)
		bareID, ok := byDisplay[strings.ToLower(display)]
		if !ok || bareID == e.ID {
			continue
		}
		entities, spans = mergeEntity(entities, spans, bareID, e.ID)
	}
	return entities, spans
}

func displayNameForHandle(handle string) string {
	body := strings.TrimPrefix(handle, "@")
	body = strings.ReplaceAll(body, "_", " ")
	return normalize.DisplayTitle(body)
}
