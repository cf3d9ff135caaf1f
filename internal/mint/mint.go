package mint

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// Minted is one promoted cluster's minted entity plus the spans its
// mentions produced.
type Minted struct {
	Entity model.Entity
	Spans  []model.EntitySpan
	Type   TypeInference
}

// Mint assigns a fresh entity ID, infers its type, classifies alias
// variants, and materialises one EntitySpan per mention (spec.md §4.6).
// stamp is the entity's CreatedAt value; callers pass a single timestamp
// captured once per extraction call so minted entities within one run
// share a creation time.
func Mint(c *model.MentionCluster, b *lexicon.Bundle, stamp time.Time) Minted {
	id := uuid.NewString()
	inference := InferType(c, b)

	sourceSet := map[model.Source]struct{}{}
	for _, m := range c.Mentions {
		sourceSet[m.Source] = struct{}{}
	}

	entity := model.Entity{
		ID:         id,
		Type:       inference.Type,
		Canonical:  c.Canonical,
		Confidence: inference.Confidence,
		CreatedAt:  stamp,
		Attrs: model.EntityAttrs{
			MentionCount: c.MentionCount(),
			NEREvidence:  nerEvidence(c),
			SourceSet:    sourceSet,
		},
	}
	if inference.Signal == "headword" {
		t := inference.Type
		entity.Attrs.HeadwordSignal = &t
	}

	// A spelled-out year ("one thousand seven hundred and seventy-five")
	// canonicalises to its numeral form; the spelled text is kept as an
	// alias so the span still normalises to the entity (spec.md §8
	// convert_spelled_year round-trip).
	if numeral, ok := spelledYearCanonical(c); ok {
		entity.Canonical = numeral
		entity.AddAlias(c.Canonical)
	}

	for alias := range c.AliasVariants {
		if ClassifyAlias(alias, c.Canonical, b) != AliasRejected {
			entity.AddAlias(alias)
		}
	}

	spans := make([]model.EntitySpan, 0, len(c.Mentions))
	for _, m := range c.Mentions {
		spans = append(spans, model.EntitySpan{
			EntityID: id,
			Start:    m.Start,
			End:      m.End,
			Surface:  m.Surface,
			Source:   m.Source,
		})
	}

	return Minted{Entity: entity, Spans: spans, Type: inference}
}

// spelledYearCanonical reports the numeric form of a cluster minted from a
// spelled-out year candidate, if any of its mentions carry the
// YearWordsNominator's "spelled-year:" Strategy tag (spec.md §8
// convert_spelled_year).
func spelledYearCanonical(c *model.MentionCluster) (string, bool) {
	for _, m := range c.Mentions {
		if strings.HasPrefix(m.Strategy, "spelled-year:") {
			return strings.TrimPrefix(m.Strategy, "spelled-year:"), true
		}
	}
	return "", false
}

func nerEvidence(c *model.MentionCluster) map[model.EntityType]int {
	out := map[model.EntityType]int{}
	for label, n := range c.NERHints {
		if t, ok := nerToType[label]; ok {
			out[t] += n
		}
	}
	return out
}
