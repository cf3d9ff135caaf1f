package model

import (
	"time"

	"github.com/nucleus/entity-extractor/internal/normalize"
)

// Entity is a minted, canonical referent (spec.md §3). Entities are created
// exclusively by internal/mint; internal/postprocess may merge a secondary
// entity into a primary one (transferring aliases and spans) and drop the
// secondary, but never mutates a surviving entity's identity.
type Entity struct {
	ID         string
	Type       EntityType
	Canonical  string
	Aliases    []string
	Confidence float64
	CreatedAt  time.Time
	Attrs      EntityAttrs
}

// EntityAttrs records the evidence behind a minted entity, for later review
// (the persisted debug report of spec.md §6 surfaces these verbatim).
type EntityAttrs struct {
	MentionCount   int
	NEREvidence    map[EntityType]int
	HeadwordSignal *EntityType
	SourceSet      map[Source]struct{}
}

// HasAlias reports whether alias is already present, compared under
// normalize.NormalizeName so that case/title/whitespace variants (e.g.
// "Harry" and "HARRY") count as the same alias, per spec.md §3's "aliases
// are unique under normalize_name" invariant.
func (e *Entity) HasAlias(alias string) bool {
	key := normalize.NormalizeName(alias)
	for _, a := range e.Aliases {
		if normalize.NormalizeName(a) == key {
			return true
		}
	}
	return false
}

// AddAlias appends alias if it is not already present (under
// normalize.NormalizeName) and does not normalise to the canonical form
// itself.
func (e *Entity) AddAlias(alias string) {
	if alias == "" {
		return
	}
	if normalize.NormalizeName(alias) == normalize.NormalizeName(e.Canonical) {
		return
	}
	if e.HasAlias(alias) {
		return
	}
	e.Aliases = append(e.Aliases, alias)
}
