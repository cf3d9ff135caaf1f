package nominate

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

var romanNumeral = regexp.MustCompile(`^(I|II|III|IV|V)$`)

var connectors = map[string]bool{"of": true, "the": true, "de": true, "la": true, "von": true, "van": true}

var orgDescriptors = map[string]bool{
	"corporation": true, "company": true, "inc": true, "ltd": true,
	"university": true, "institute": true, "academy": true,
}

var sentenceBreak = regexp.MustCompile(`[.,;:!?]`)

// FallbackNominator matches capitalised 1-4 word sequences, whether or not
// another nominator also produced them, extending through connectors, Roman numerals, and
// organisational descriptors; trims trailing punctuation and rejects
// stopword-only or bare single tokens preceded by "the"/"and" (spec.md
// §4.2).
func FallbackNominator(b *lexicon.Bundle) Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		var out []model.Candidate
		toks := sent.Tokens
		i := 0
		for i < len(toks) {
			if !isCapitalizedText(toks[i].Text) {
				i++
				continue
			}
			j := i + 1
			count := 1
			for j < len(toks) && count < 4 {
				t := toks[j]
				lower := strings.ToLower(t.Text)
				if isCapitalizedText(t.Text) || connectors[lower] || romanNumeral.MatchString(t.Text) || orgDescriptors[lower] {
					if sentenceBreak.MatchString(toks[j-1].Text) {
						break
					}
					j++
					count++
					continue
				}
				break
			}
			run := toks[i:j]
			if isRejectable(run, i, toks, b) {
				i = j
				continue
			}
			out = append(out, build(run, model.SourceFallback, "capitalised-run", sentIdx, ""))
			i = j
		}
		return out
	}
}

func isRejectable(run []model.Token, firstIdx int, all []model.Token, b *lexicon.Bundle) bool {
	allStop := true
	for _, t := range run {
		if !b.IsStopword(t.Text) {
			allStop = false
			break
		}
	}
	if allStop {
		return true
	}
	if len(run) == 1 && firstIdx > 0 {
		prev := strings.ToLower(all[firstIdx-1].Text)
		if prev == "the" || prev == "and" {
			return true
		}
	}
	return false
}
