package nominate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

var numericYear = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100, "thousand": 1000,
}

// YearWordsNominator matches 4-digit year literals in [1500, 2099] and
// spelled-out years such as "one thousand seven hundred and seventy-five",
// canonicalising the latter to its numeric form in Strategy metadata
// (spec.md §4.2). The candidate's Surface always holds the original text.
func YearWordsNominator() Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		var out []model.Candidate
		if sent.End <= len(docText) && sent.Start <= sent.End {
			text := docText[sent.Start:sent.End]
			for _, m := range numericYear.FindAllStringIndex(text, -1) {
				out = append(out, model.Candidate{
					Surface:       text[m[0]:m[1]],
					Start:         sent.Start + m[0],
					End:           sent.Start + m[1],
					Source:        model.SourcePattern,
					SentenceIndex: sentIdx,
					NERHint:       "DATE",
					Strategy:      "year-literal",
				})
			}
		}
		out = append(out, spelledYears(sent, sentIdx, docText)...)
		return out
	}
}

func spelledYears(sent model.ParsedSentence, sentIdx int, docText string) []model.Candidate {
	var out []model.Candidate
	toks := sent.Tokens
	i := 0
	for i < len(toks) {
		if _, ok := wordNumbers[lowerText(toks[i])]; !ok {
			i++
			continue
		}
		j := i
		for j < len(toks) {
			w := lowerText(toks[j])
			if _, ok := wordNumbers[w]; ok || w == "and" || w == "-" {
				j++
				continue
			}
			break
		}
		if j-i >= 2 {
			value := parseSpelledNumber(toks[i:j])
			if value >= 1500 && value <= 2099 {
				surface := surfaceOf(toks[i:j])
				if start, end := toks[i].Start, toks[j-1].End; start >= 0 && start < end && end <= len(docText) {
					surface = docText[start:end]
				}
				out = append(out, model.Candidate{
					Surface:       surface,
					Start:         toks[i].Start,
					End:           toks[j-1].End,
					Source:        model.SourcePattern,
					SentenceIndex: sentIdx,
					NERHint:       "DATE",
					Strategy:      "spelled-year:" + strconv.Itoa(value),
				})
			}
		}
		i = j
		if i == 0 {
			i++
		}
	}
	return out
}

func lowerText(t model.Token) string {
	return strings.ToLower(t.Text)
}

// parseSpelledNumber folds a run of number words into its integer value
// using the standard English "hundreds then tens/ones" accumulation: a
// hundred/thousand multiplies the running sub-total, anything else adds.
func parseSpelledNumber(toks []model.Token) int {
	total, current := 0, 0
	for _, t := range toks {
		w := lowerText(t)
		n, ok := wordNumbers[w]
		if !ok {
			continue
		}
		switch n {
		case 100:
			if current == 0 {
				current = 1
			}
			current *= 100
		case 1000:
			if current == 0 {
				current = 1
			}
			total += current * 1000
			current = 0
		default:
			current += n
		}
	}
	return total + current
}
