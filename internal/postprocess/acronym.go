package postprocess

import (
	"strings"
	"unicode"

	"github.com/nucleus/entity-extractor/internal/model"
)

// MergeAcronyms merges an acronym entity and its expansion entity into a
// single ORG entity when both were independently minted: canonical becomes
// the acronym, the expansion becomes an alias (spec.md §4.7). pairs is
// (acronymEntityID, expansionEntityID) tuples, as found by FindAcronymPairs.
func MergeAcronyms(entities []model.Entity, spans []model.EntitySpan, pairs [][2]string) ([]model.Entity, []model.EntitySpan) {
	for _, pair := range pairs {
		acronymID, expansionID := pair[0], pair[1]
		entities, spans = mergeEntity(entities, spans, acronymID, expansionID)
	}
	return entities, spans
}

// FindAcronymPairs locates minted ORG entity pairs produced by the
// acronym/expansion nomination pattern ("DataFlow Technologies (DFT)"),
// which mints the acronym and the expansion as two independent entities.
// A pair is recognised when one entity's canonical is the embedded-capitals
// acronym of the other's, and their earliest spans sit back to back in
// docText separated only by whitespace and a parenthesis.
func FindAcronymPairs(entities []model.Entity, spans []model.EntitySpan, docText string) [][2]string {
	earliest := map[string]model.EntitySpan{}
	for _, s := range spans {
		cur, ok := earliest[s.EntityID]
		if !ok || s.Start < cur.Start {
			earliest[s.EntityID] = s
		}
	}

	var orgs []model.Entity
	for _, e := range entities {
		if e.Type == model.TypeOrg {
			orgs = append(orgs, e)
		}
	}

	var pairs [][2]string
	paired := map[string]bool{}
	for _, a := range orgs {
		if paired[a.ID] {
			continue
		}
		for _, b := range orgs {
			if a.ID == b.ID || paired[b.ID] {
				continue
			}
			if !isAcronymOf(a.Canonical, b.Canonical) {
				continue
			}
			sa, okA := earliest[a.ID]
			sb, okB := earliest[b.ID]
			if !okA || !okB || !adjacentByParens(sa, sb, docText) {
				continue
			}
			pairs = append(pairs, [2]string{a.ID, b.ID})
			paired[a.ID], paired[b.ID] = true, true
			break
		}
	}
	return pairs
}

// isAcronymOf reports whether acronym equals the sequence of capital
// letters embedded in expansion, e.g. "DFT" against "DataFlow
// Technologies" (D, F, T).
func isAcronymOf(acronym, expansion string) bool {
	if len(acronym) < 2 || len(acronym) > 5 || acronym != strings.ToUpper(acronym) {
		return false
	}
	return capitalsOf(expansion) == acronym
}

func capitalsOf(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func adjacentByParens(a, b model.EntitySpan, docText string) bool {
	lo, hi := a, b
	if lo.Start > hi.Start {
		lo, hi = hi, lo
	}
	if hi.Start < lo.End || lo.End > len(docText) || hi.Start > len(docText) {
		return false
	}
	between := strings.TrimSpace(docText[lo.End:hi.Start])
	return between == "(" || between == ""
}
