// Package overrides implements the manual-override inline tag syntax of
// spec.md §8: an author can pin a span's entity type by wrapping it in
// "[[Surface::TYPE]]" directly in the source text. ParseInlineTags strips
// the markup back to plain prose and returns the pinned spans as
// ManualOverride values; ApplyInlineTags is its inverse, so that re-tagging
// a parsed document and re-parsing it is idempotent.
package overrides

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

var tagPattern = regexp.MustCompile(`\[\[([^:\]]+)::([A-Za-z]+)\]\]`)

// ManualOverride records one span of the cleaned document text tagged with
// an explicit entity type. cmd/extractctl adds each override's surface to
// the run's whitelist, which lets the promotion gate accept a matching
// cluster; the span still goes through nomination, gating and type
// inference, and Type is not applied to the minted entity.
type ManualOverride struct {
	Surface string
	Type    model.EntityType
	Start   int // offset into the cleaned text, inclusive
	End     int // offset into the cleaned text, exclusive
}

// ParseInlineTags strips every "[[Surface::TYPE]]" tag from text, returning
// the plain text with each tag replaced by its bare Surface, plus the
// override that span now carries. Tags naming a type outside the closed
// EntityType vocabulary are left as manual overrides anyway; callers that
// care about validity should check ManualOverride.Type.Valid().
func ParseInlineTags(text string) (string, []ManualOverride) {
	matches := tagPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var clean strings.Builder
	var out []ManualOverride
	last := 0
	for _, m := range matches {
		tagStart, tagEnd := m[0], m[1]
		surfaceStart, surfaceEnd := m[2], m[3]
		typeStart, typeEnd := m[4], m[5]

		clean.WriteString(text[last:tagStart])
		surface := text[surfaceStart:surfaceEnd]
		start := clean.Len()
		clean.WriteString(surface)
		out = append(out, ManualOverride{
			Surface: surface,
			Type:    model.EntityType(strings.ToUpper(text[typeStart:typeEnd])),
			Start:   start,
			End:     clean.Len(),
		})
		last = tagEnd
	}
	clean.WriteString(text[last:])
	return clean.String(), out
}

// ApplyInlineTags is ParseInlineTags's inverse: given plain text and the
// overrides it carries (as returned by ParseInlineTags, offsets into text
// itself), it re-wraps each overridden span in "[[Surface::TYPE]]" markup.
// Overrides are applied from the end of the text backwards so earlier
// offsets are unaffected by markup inserted at later ones.
func ApplyInlineTags(text string, overrides []ManualOverride) string {
	if len(overrides) == 0 {
		return text
	}
	ordered := make([]ManualOverride, len(overrides))
	copy(ordered, overrides)
	sortByStartDesc(ordered)

	out := text
	for _, o := range ordered {
		if o.Start < 0 || o.End > len(out) || o.Start > o.End {
			continue
		}
		tag := "[[" + out[o.Start:o.End] + "::" + string(o.Type) + "]]"
		out = out[:o.Start] + tag + out[o.End:]
	}
	return out
}

// sortByStartDesc orders overrides from highest Start to lowest; a plain
// insertion sort is plenty since a document carries at most a handful of
// manual overrides.
func sortByStartDesc(o []ManualOverride) {
	for i := 1; i < len(o); i++ {
		for j := i; j > 0 && o[j-1].Start < o[j].Start; j-- {
			o[j-1], o[j] = o[j], o[j-1]
		}
	}
}
