// Package normalize implements normalize_name and the related surface-form
// utilities spec.md §3/§8 build its invariants on: whitespace collapse,
// title-stripping, trailing-punctuation trimming, and last-name extraction.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Collapse folds case and collapses internal whitespace runs to a single
// space, trimming leading/trailing space. It is the base building block of
// normalize_name and of Candidate.ValidateSpan.
func Collapse(s string) string {
	fields := strings.Fields(s)
	return strings.ToLower(strings.Join(fields, " "))
}

// TrimPunctuation removes trailing sentence punctuation (.,;:!?) and
// trailing closing quote/bracket characters from a surface form; leading
// characters are left as they are.
func TrimPunctuation(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".,;:!?\"'’”)]")
}

// titlePrefixes are stripped by TitleStrip. Kept here (rather than only in
// internal/lexicon) since normalize_name is specified as a pure string
// function independent of any lexicon bundle.
var titlePrefixes = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"professor": true, "lord": true, "lady": true, "king": true,
	"queen": true, "sir": true, "dame": true, "captain": true,
	"president": true, "senator": true, "general": true,
}

// TitleStrip removes a leading title word (case-insensitively, optional
// trailing period) from a whitespace-normalised surface, returning the
// remainder and whether a title was found.
func TitleStrip(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s, false
	}
	first := strings.ToLower(strings.TrimSuffix(fields[0], "."))
	if !titlePrefixes[first] {
		return s, false
	}
	return strings.Join(fields[1:], " "), true
}

// LastNameKey builds the "lastname:<w>" clustering key of spec.md §4.4 when
// the surface has >= 2 tokens and its last token is >= 3 lowercase letters
// once folded; ok is false otherwise.
func LastNameKey(surface string) (key string, ok bool) {
	fields := strings.Fields(surface)
	if len(fields) < 2 {
		return "", false
	}
	last := strings.ToLower(fields[len(fields)-1])
	if len([]rune(last)) < 3 {
		return "", false
	}
	for _, r := range last {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return "lastname:" + last, true
}

// NormalizeName implements normalize_name: collapse whitespace/case, then
// strip a leading title, then trim trailing punctuation. This is the single
// function spec.md §8 invariant 1 refers to when it says a span's text must
// "normalise" to an entity's canonical or alias.
func NormalizeName(s string) string {
	collapsed := Collapse(TrimPunctuation(s))
	if stripped, ok := TitleStrip(collapsed); ok {
		return stripped
	}
	return collapsed
}

// DisplayTitle renders s in title case for canonical display purposes (used
// when converting underscore-delimited social handles to display names,
// spec.md §4.2/§4.7).
func DisplayTitle(s string) string {
	return titleCaser.String(s)
}

// IsCapitalized reports whether s's first letter is uppercase.
func IsCapitalized(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// IsAllLower reports whether s contains no uppercase letters.
func IsAllLower(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
