package nominate

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// WhitelistNominator matches the curated case-insensitive whitelist of
// domain-specific proper names against sentence text, respecting word
// boundaries (spec.md §4.2).
func WhitelistNominator(b *lexicon.Bundle) Nominator {
	type entry struct {
		pattern  *regexp.Regexp
		typeName string
	}
	entries := make([]entry, 0, len(b.Whitelist))
	for key, typeName := range b.Whitelist {
		entries = append(entries, entry{
			pattern:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`),
			typeName: typeName,
		})
	}
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		if sent.End > len(docText) || sent.Start > sent.End || len(entries) == 0 {
			return nil
		}
		text := docText[sent.Start:sent.End]
		var out []model.Candidate
		for _, e := range entries {
			for _, m := range e.pattern.FindAllStringIndex(text, -1) {
				out = append(out, model.Candidate{
					Surface:       text[m[0]:m[1]],
					Start:         sent.Start + m[0],
					End:           sent.Start + m[1],
					Source:        model.SourceWhitelist,
					SentenceIndex: sentIdx,
					NERHint:       strings.ToUpper(e.typeName),
					Strategy:      "whitelist",
				})
			}
		}
		return out
	}
}
