package nominate

import (
	"sort"

	"github.com/nucleus/entity-extractor/internal/gate"
	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

var compoundDeps = map[string]bool{"compound": true, "flat": true, "flat:name": true}

// DependencyNominator collects the maximal contiguous compound/flat span
// governed by a PROPN or capitalised NOUN head, emitting only when the
// head's dependency context suggests an entity role (spec.md §4.2).
func DependencyNominator(b *lexicon.Bundle) Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		var out []model.Candidate
		for _, head := range sent.Tokens {
			if head.POS != "PROPN" && !(head.POS == "NOUN" && isCapitalizedText(head.Text)) {
				continue
			}
			run := []model.Token{head}
			for _, t := range sent.Tokens {
				if t.I == head.I {
					continue
				}
				if t.Head == head.I && compoundDeps[t.Dep] {
					run = append(run, t)
				}
			}
			if len(run) < 2 {
				continue
			}
			sortByIndex(run)
			h := gate.Extract(sent, run)
			if !gate.HasInterestingRole(h) {
				continue
			}
			out = append(out, build(run, model.SourceDep, "compound-flat", sentIdx, head.Ent))
		}
		return out
	}
}

func isCapitalizedText(s string) bool {
	for _, r := range s {
		return r >= 'A' && r <= 'Z'
	}
	return false
}

func sortByIndex(toks []model.Token) {
	sort.Slice(toks, func(i, j int) bool { return toks[i].I < toks[j].I })
}
