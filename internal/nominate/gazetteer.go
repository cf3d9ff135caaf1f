package nominate

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// GazetteerNominator matches sentence tokens against the known-places and
// known-orgs gazetteers and the ambiguous-place-cue pattern (`in|to|from|at
// X` where X is an ambiguous place), spec.md §4.2.
func GazetteerNominator(b *lexicon.Bundle) Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		var out []model.Candidate
		toks := sent.Tokens
		for i := range toks {
			for span := 1; span <= 3 && i+span <= len(toks); span++ {
				run := toks[i : i+span]
				surf := strings.ToLower(surfaceOf(run))
				if b.KnownPlaces[surf] {
					out = append(out, withHint(build(run, model.SourceGaz, "known-place", sentIdx, ""), "GPE"))
				}
				if b.KnownOrgs[surf] {
					out = append(out, withHint(build(run, model.SourceGaz, "known-org", sentIdx, ""), "ORG"))
				}
			}
		}
		for i := 0; i+1 < len(toks); i++ {
			cue := strings.ToLower(toks[i].Text)
			if cue != "in" && cue != "to" && cue != "from" && cue != "at" {
				continue
			}
			j := i + 1
			for span := 1; span <= 3 && j+span <= len(toks); span++ {
				run := toks[j : j+span]
				surf := strings.ToLower(surfaceOf(run))
				if b.AmbiguousPlaces[surf] {
					out = append(out, withHint(build(run, model.SourceGaz, "ambiguous-place-cue", sentIdx, ""), "GPE"))
				}
			}
		}
		return out
	}
}

func withHint(c model.Candidate, hint string) model.Candidate {
	c.NERHint = hint
	return c
}
