package mint

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/normalize"
)

// AliasStrength classifies a candidate alias surface against an entity's
// canonical form (spec.md §4.6).
type AliasStrength int

const (
	AliasRejected AliasStrength = iota
	AliasAmbiguous
	AliasStrong
)

// ClassifyAlias returns the strength of candidate as an alias of canonical.
func ClassifyAlias(candidate, canonical string, b *lexicon.Bundle) AliasStrength {
	candNorm := normalize.NormalizeName(candidate)
	canonNorm := normalize.NormalizeName(canonical)
	if candNorm == canonNorm {
		return AliasRejected
	}

	fields := strings.Fields(candidate)
	canonFields := strings.Fields(canonical)
	if len(canonFields) == 0 {
		return AliasRejected
	}
	firstOfCanon := strings.ToLower(canonFields[0])
	lastOfCanon := strings.ToLower(canonFields[len(canonFields)-1])

	if strings.HasPrefix(candidate, "@") {
		return AliasStrong
	}
	if len(fields) > 1 {
		return AliasStrong
	}
	single := strings.ToLower(candidate)
	if single == firstOfCanon {
		return AliasStrong
	}
	if resolved, ok := b.CanonicalNickname(single); ok && resolved == firstOfCanon {
		return AliasStrong
	}
	if single == lastOfCanon {
		return AliasAmbiguous
	}
	return AliasRejected
}
