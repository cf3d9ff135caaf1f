package nominate

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

// ConjunctiveNominator inspects the candidates already produced for one
// sentence (by the NER pass) and, for every `X and Y` pattern where X is a
// known PERSON candidate and Y is an unknown capitalised token immediately
// following "and", emits Y as a PERSON candidate (spec.md §4.2).
func ConjunctiveNominator(sentCandidates []model.Candidate) Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		var out []model.Candidate
		for _, x := range sentCandidates {
			if x.NERHint != "PERSON" || x.Source != model.SourceNER {
				continue
			}
			for i, t := range sent.Tokens {
				if t.Start != x.End {
					continue
				}
				// t immediately follows x's span; look for "and Y".
				if strings.ToLower(t.Text) != "and" || i+1 >= len(sent.Tokens) {
					continue
				}
				next := sent.Tokens[i+1]
				if !isCapitalizedText(next.Text) {
					continue
				}
				if alreadyCovered(sentCandidates, next) {
					continue
				}
				out = append(out, model.Candidate{
					Surface:       next.Text,
					Start:         next.Start,
					End:           next.End,
					Tokens:        []model.Token{next},
					Source:        model.SourceNER,
					SentenceIndex: sentIdx,
					NERHint:       "PERSON",
					Strategy:      "conjunctive",
				})
			}
		}
		return out
	}
}

func alreadyCovered(cands []model.Candidate, t model.Token) bool {
	for _, c := range cands {
		if t.Start >= c.Start && t.End <= c.End {
			return true
		}
	}
	return false
}
