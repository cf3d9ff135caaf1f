// Package preprocess erases document structure (markdown headers, heading
// keywords, horizontal dividers) that would otherwise pollute nomination,
// without shifting any character offset (spec.md §4.1).
package preprocess

import (
	"regexp"
	"strings"
)

// headingKeywords match a line whose first word (after optional leading
// blanks) is one of these keywords, case-insensitively; the whole line is
// blanked, whatever follows the keyword ("CHAPTER ONE: The Return", but also
// a prose line opening with "Part of").
var headingKeywords = regexp.MustCompile(`(?im)^[ \t]*(CHAPTER|PROLOGUE|EPILOGUE|PART|BOOK|ACT|SCENE)\b[^\n]*$`)

// markdownHeader matches a leading run of 1-6 '#' characters starting a
// line, through end of line.
var markdownHeader = regexp.MustCompile(`(?m)^#{1,6}[^\n]*$`)

// divider matches a line made up solely of three or more '-' or '='
// characters (allowing surrounding whitespace).
var divider = regexp.MustCompile(`(?m)^[ \t]*[-=]{3,}[ \t]*$`)

// Clean returns text with headers and dividers replaced by runs of spaces
// of identical length, so every surviving character keeps its original
// offset. The transform is purely deterministic and idempotent: running it
// twice yields the same result as running it once.
func Clean(text string) string {
	out := blankMatches(text, markdownHeader)
	out = blankMatches(out, headingKeywords)
	out = blankMatches(out, divider)
	return out
}

func blankMatches(text string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(text, func(match string) string {
		return strings.Repeat(" ", len(match))
	})
}
