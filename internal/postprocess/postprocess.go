package postprocess

import (
	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// Run applies every stage-7 transform of spec.md §4.7 over the minted
// entity/span set and returns the post-processed result. Acronym merging
// runs first, then coordination splitting, event fusion, handle folding,
// nickname folding, explicit alias patterns, span-conflict resolution and
// title-alias preservation, in that order.
func Run(entities []model.Entity, spans []model.EntitySpan, docText string, b *lexicon.Bundle) ([]model.Entity, []model.EntitySpan) {
	entities, spans = MergeAcronyms(entities, spans, FindAcronymPairs(entities, spans, docText))
	entities, spans = SplitCoordination(entities, spans)
	entities, spans = FuseEventOf(entities, spans, docText)
	entities, spans = FoldSocialHandles(entities, spans)
	entities, spans = FoldNicknames(entities, spans, b)
	entities, spans = ApplyExplicitAliasPatterns(entities, spans, docText)
	spans = ResolveSpanConflicts(entities, spans)
	entities = PreserveTitleAliases(entities, docText)
	entities = dropOrphans(entities, spans)
	return entities, spans
}

// dropOrphans removes any entity left with zero spans after merges (its
// identity was fully absorbed into another entity).
func dropOrphans(entities []model.Entity, spans []model.EntitySpan) []model.Entity {
	live := map[string]bool{}
	for _, s := range spans {
		live[s.EntityID] = true
	}
	var out []model.Entity
	for _, e := range entities {
		if live[e.ID] {
			out = append(out, e)
		}
	}
	return out
}
