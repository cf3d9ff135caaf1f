package nominate

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// Regex-matched pattern classes (spec.md §4.2), compiled once at package
// init so nomination never pays re-compilation cost per document.
var (
	acronymThenExpansion = regexp.MustCompile(`\b([A-Z]{2,5})\s*\(([A-Z][\w' .-]{2,60}?)\)`)
	expansionThenAcronym = regexp.MustCompile(`\b([A-Z][\w' .-]{2,60}?)\s*\(([A-Z]{2,5})\)`)
	titledNamePattern    = regexp.MustCompile(`\b(Dr|Mrs|Mr|Ms|Prof|Professor|Lord|Lady|Sir|Dame|Captain|President|Senator|General)\.?\s+([A-Z][a-zA-Z'-]+)`)
	familyPattern        = regexp.MustCompile(`\b([A-Z][a-zA-Z'-]+)\s+family\b`)
	eventOfPattern       = regexp.MustCompile(`\b(Battle|War|Siege|Council|Treaty)\s+of\s+([A-Z][\w' -]+)`)
	schoolSuffixPattern  = regexp.MustCompile(`\b([A-Z][\w' .-]*?\s(?:High School|University|Academy|Institute))\b`)
)

// PatternNominator applies the fixed regex classes of spec.md §4.2 to the
// raw sentence text (acronym/expansion pairs, titled names, "X family",
// event-of-Y, and school-name suffixes). Matches are clamped to this
// sentence's span so they never cross a sentence boundary.
func PatternNominator(b *lexicon.Bundle) Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		if sent.End > len(docText) || sent.Start > sent.End {
			return nil
		}
		text := docText[sent.Start:sent.End]
		var out []model.Candidate

		// Each acronym/expansion match yields two independent candidates (the
		// acronym alone and the expansion alone), not one span covering the
		// whole parenthetical: internal/postprocess's MergeAcronyms pass
		// expects two separately minted ORG entities to merge, recovering
		// the adjacency from docText itself (spec.md §4.7).
		for _, m := range acronymThenExpansion.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, patternCand(text, sent.Start, m[2], m[3], "acronym-pair", sentIdx, "ORG"))
			out = append(out, patternCand(text, sent.Start, m[4], m[5], "acronym-pair", sentIdx, "ORG"))
		}
		for _, m := range expansionThenAcronym.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, patternCand(text, sent.Start, m[2], m[3], "acronym-pair", sentIdx, "ORG"))
			out = append(out, patternCand(text, sent.Start, m[4], m[5], "acronym-pair", sentIdx, "ORG"))
		}
		for _, m := range titledNamePattern.FindAllStringSubmatchIndex(text, -1) {
			surnameStart, surnameEnd := m[4], m[5]
			out = append(out, model.Candidate{
				Surface:       text[surnameStart:surnameEnd],
				Start:         sent.Start + surnameStart,
				End:           sent.Start + surnameEnd,
				Source:        model.SourcePattern,
				SentenceIndex: sentIdx,
				NERHint:       "PERSON",
				Strategy:      "titled-name",
			})
		}
		for _, m := range familyPattern.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, patternCand(text, sent.Start, m[0], m[1], "family-name", sentIdx, "ORG"))
		}
		for _, m := range eventOfPattern.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, patternCand(text, sent.Start, m[0], m[1], "event-of", sentIdx, ""))
		}
		for _, m := range schoolSuffixPattern.FindAllStringSubmatchIndex(text, -1) {
			out = append(out, patternCand(text, sent.Start, m[0], m[1], "school-suffix", sentIdx, "ORG"))
		}
		return out
	}
}

func patternCand(text string, base, start, end int, strategy string, sentIdx int, nerHint string) model.Candidate {
	return model.Candidate{
		Surface:       strings.TrimSpace(text[start:end]),
		Start:         base + start,
		End:           base + end,
		Source:        model.SourcePattern,
		SentenceIndex: sentIdx,
		NERHint:       nerHint,
		Strategy:      strategy,
	}
}
