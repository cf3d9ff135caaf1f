package postprocess

import "github.com/nucleus/entity-extractor/internal/model"

// mergeEntity folds the entity at secondaryID into primaryID: the
// secondary's canonical and aliases become aliases of the primary, the
// secondary's spans are re-pointed to the primary's ID, and the secondary
// is dropped from the returned entity set.
func mergeEntity(entities []model.Entity, spans []model.EntitySpan, primaryID, secondaryID string) ([]model.Entity, []model.EntitySpan) {
	primaryIdx, secondaryIdx := -1, -1
	for i, e := range entities {
		if e.ID == primaryID {
			primaryIdx = i
		}
		if e.ID == secondaryID {
			secondaryIdx = i
		}
	}
	if primaryIdx == -1 || secondaryIdx == -1 {
		return entities, spans
	}

	secondary := entities[secondaryIdx]
	entities[primaryIdx].AddAlias(secondary.Canonical)
	for _, a := range secondary.Aliases {
		entities[primaryIdx].AddAlias(a)
	}

	out := make([]model.Entity, 0, len(entities)-1)
	for i, e := range entities {
		if i == secondaryIdx {
			continue
		}
		out = append(out, e)
	}

	for i := range spans {
		if spans[i].EntityID == secondaryID {
			spans[i].EntityID = primaryID
		}
	}
	return out, spans
}
