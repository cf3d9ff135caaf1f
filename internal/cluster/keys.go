// Package cluster implements the mention buffer and two-pass clustering
// algorithm of spec.md §4.4: group durable mentions by surface-derived
// keys, then merge compatible clusters that share a title-stripped or
// last-name key.
package cluster

import "github.com/nucleus/entity-extractor/internal/normalize"

// ExactKey is the lowercase whitespace-normalised surface, used for the
// first clustering pass.
func ExactKey(surface string) string {
	return normalize.Collapse(surface)
}

// TitleStrippedKey returns the "bare form" used for the second clustering
// pass: the title-stripped lowercase surface when a title prefix is
// present, or the already-bare lowercase surface otherwise. Returning a key
// even in the untitled case is what lets a bare cluster ("Wilson") merge
// with a titled one ("Dr. Wilson") that strips down to the same bare form.
func TitleStrippedKey(surface string) (string, bool) {
	collapsed := normalize.Collapse(surface)
	if stripped, ok := normalize.TitleStrip(collapsed); ok {
		return stripped, true
	}
	return collapsed, true
}

// LastNameKey returns the "lastname:<w>" key and whether it applies.
func LastNameKey(surface string) (string, bool) {
	return normalize.LastNameKey(normalize.Collapse(surface))
}
