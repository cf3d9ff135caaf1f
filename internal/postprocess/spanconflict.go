// Package postprocess implements the stage-7 merge and conflict-resolution
// transforms of spec.md §4.7, run once over the minted entity/span set in
// the order fixed by Run.
package postprocess

import (
	"sort"

	"github.com/nucleus/entity-extractor/internal/model"
)

var typePriority = map[model.EntityType]int{
	model.TypePerson: 5,
	model.TypeOrg:    4,
	model.TypeHouse:  3,
	model.TypePlace:  2,
}

func priorityOf(t model.EntityType) int {
	if p, ok := typePriority[t]; ok {
		return p
	}
	return 1
}

// ResolveSpanConflicts breaks exact (start, end) collisions between
// entities of different types by type priority then source priority, and
// removes every span strictly subsumed by a longer span, whatever entity
// or priority the longer span has (spec.md §4.7).
func ResolveSpanConflicts(entities []model.Entity, spans []model.EntitySpan) []model.EntitySpan {
	typeByID := make(map[string]model.EntityType, len(entities))
	for _, e := range entities {
		typeByID[e.ID] = e.Type
	}

	model.SortSpans(spans)

	byExactRange := map[[2]int][]model.EntitySpan{}
	for _, s := range spans {
		key := [2]int{s.Start, s.End}
		byExactRange[key] = append(byExactRange[key], s)
	}

	var deduped []model.EntitySpan
	seen := map[[2]int]bool{}
	for _, s := range spans {
		key := [2]int{s.Start, s.End}
		if seen[key] {
			continue
		}
		seen[key] = true
		group := byExactRange[key]
		if len(group) == 1 {
			deduped = append(deduped, group[0])
			continue
		}
		deduped = append(deduped, bestOf(group, typeByID))
	}

	return removeSubsumed(deduped, typeByID)
}

func bestOf(group []model.EntitySpan, typeByID map[string]model.EntityType) model.EntitySpan {
	best := group[0]
	bestScore := score(best, typeByID)
	for _, s := range group[1:] {
		sc := score(s, typeByID)
		if sc > bestScore {
			best, bestScore = s, sc
		}
	}
	return best
}

func score(s model.EntitySpan, typeByID map[string]model.EntityType) int {
	return priorityOf(typeByID[s.EntityID])*10 + s.Source.Priority()
}

func removeSubsumed(spans []model.EntitySpan, typeByID map[string]model.EntityType) []model.EntitySpan {
	keep := make([]bool, len(spans))
	for i := range spans {
		keep[i] = true
	}
	for i := range spans {
		if !keep[i] {
			continue
		}
		for j := range spans {
			if i == j || !keep[j] {
				continue
			}
			if spans[j].Subsumes(spans[i]) {
				keep[i] = false
				break
			}
		}
	}
	var out []model.EntitySpan
	for i, s := range spans {
		if keep[i] {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}
