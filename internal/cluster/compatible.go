package cluster

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// NERCompatible reports whether a and b may be merged: either both lack
// NER hints, exactly one has hints, the hint sets are equal, or they are
// {GPE, LOC} (treated as synonymous), per spec.md §4.4.
func NERCompatible(a, b *model.MentionCluster) bool {
	if len(a.NERHints) == 0 || len(b.NERHints) == 0 {
		return true
	}
	aLabels := labelSet(a)
	bLabels := labelSet(b)
	if setsEqual(aLabels, bLabels) {
		return true
	}
	gpeLoc := map[string]bool{"GPE": true, "LOC": true}
	if isSubsetOf(aLabels, gpeLoc) && isSubsetOf(bLabels, gpeLoc) {
		return true
	}
	return false
}

func labelSet(c *model.MentionCluster) map[string]bool {
	set := make(map[string]bool, len(c.NERHints))
	for label := range c.NERHints {
		set[label] = true
	}
	return set
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func isSubsetOf(a, b map[string]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// SharesSupportingContext reports whether a and b have at least one
// first-name token in common among their mentions' surfaces. This is the
// "supporting evidence" spec.md §4.4 requires before merging two PERSON
// clusters on a bare last-name key alone: NERCompatible by itself would let
// any two unrelated same-surname people ("Smith" and "Smith") merge, since
// NER labels carry no first-name information.
func SharesSupportingContext(a, b *model.MentionCluster, lex *lexicon.Bundle) bool {
	aNames := firstNameTokens(a, lex)
	if len(aNames) == 0 {
		return false
	}
	bNames := firstNameTokens(b, lex)
	for name := range aNames {
		if bNames[name] {
			return true
		}
	}
	return false
}

// firstNameTokens collects the lowercase first-name token of every
// multi-word mention surface in c, skipping a leading title word (e.g.
// "Dr. Wilson" contributes nothing, since "dr" is not a first name).
func firstNameTokens(c *model.MentionCluster, lex *lexicon.Bundle) map[string]bool {
	out := map[string]bool{}
	for _, m := range c.Mentions {
		fields := strings.Fields(m.Surface)
		if len(fields) < 2 {
			continue
		}
		first := strings.ToLower(strings.TrimSuffix(fields[0], "."))
		if lex.IsTitlePrefix(first) {
			continue
		}
		out[first] = true
	}
	return out
}
