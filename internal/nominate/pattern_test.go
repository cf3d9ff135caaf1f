package nominate

import (
	"testing"

	"github.com/nucleus/entity-extractor/internal/model"
)

func sentOf(text string, words ...string) model.ParsedSentence {
	sent := model.ParsedSentence{Start: 0, End: len(text)}
	pos := 0
	for i, w := range words {
		start := indexFrom(text, w, pos)
		sent.Tokens = append(sent.Tokens, model.Token{I: i, Text: w, Lemma: w, POS: "NUM", Start: start, End: start + len(w)})
		pos = start + len(w)
	}
	return sent
}

func indexFrom(text, sub string, from int) int {
	for i := from; i+len(sub) <= len(text); i++ {
		if text[i:i+len(sub)] == sub {
			return i
		}
	}
	return from
}

// TestYearWordsNominatorConvertsSpelledYear checks spec.md §8's
// convert_spelled_year round-trip: the spelled-out form parses to 1775 and
// the candidate keeps the original surface text.
func TestYearWordsNominatorConvertsSpelledYear(t *testing.T) {
	text := "It happened in one thousand seven hundred and seventy-five during the war."
	sent := sentOf(text, "one", "thousand", "seven", "hundred", "and", "seventy", "-", "five")
	doc := model.ParsedDocument{Sentences: []model.ParsedSentence{sent}}

	nominator := YearWordsNominator()
	cands := nominator(doc, 0, sent, text)

	var found *model.Candidate
	for i := range cands {
		if cands[i].Strategy == "spelled-year:1775" {
			found = &cands[i]
		}
	}
	if found == nil {
		t.Fatalf("no candidate tagged spelled-year:1775 among %+v", cands)
	}
	if found.Surface != text[found.Start:found.End] {
		t.Errorf("surface %q does not match span text %q", found.Surface, text[found.Start:found.End])
	}
	if found.NERHint != "DATE" {
		t.Errorf("NERHint = %q, want DATE", found.NERHint)
	}
}

func TestParseSpelledNumberHandlesHundredsAndThousands(t *testing.T) {
	cases := []struct {
		words []string
		want  int
	}{
		{[]string{"seventeen", "hundred", "and", "seventy", "-", "five"}, 1775},
		{[]string{"one", "thousand", "nine", "hundred"}, 1900},
		{[]string{"twenty"}, 20},
	}
	for _, tc := range cases {
		toks := make([]model.Token, len(tc.words))
		for i, w := range tc.words {
			toks[i] = model.Token{I: i, Text: w, Lemma: w}
		}
		got := parseSpelledNumber(toks)
		if got != tc.want {
			t.Errorf("parseSpelledNumber(%v) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestYearWordsNominatorIgnoresOutOfRangeSpelledNumbers(t *testing.T) {
	// "twenty" alone parses to 20, far outside [1500, 2099]; must not be
	// nominated as a year.
	text := "I am twenty years old."
	sent := sentOf(text, "twenty")
	doc := model.ParsedDocument{Sentences: []model.ParsedSentence{sent}}
	cands := YearWordsNominator()(doc, 0, sent, text)
	for _, c := range cands {
		if c.NERHint == "DATE" {
			t.Errorf("did not expect a DATE candidate from %q, got %+v", text, c)
		}
	}
}

// TestPatternNominatorSplitsAcronymPairIntoTwoCandidates guards the
// acronym-merge wiring fix: the acronym and its expansion must nominate as
// two independent candidates, not one span covering the whole parenthetical,
// so internal/postprocess.MergeAcronyms has two minted entities to fold.
func TestPatternNominatorSplitsAcronymPairIntoTwoCandidates(t *testing.T) {
	text := "DataFlow Technologies (DFT) announced a merger."
	sent := model.ParsedSentence{Start: 0, End: len(text)}
	doc := model.ParsedDocument{Sentences: []model.ParsedSentence{sent}}

	cands := PatternNominator(nil)(doc, 0, sent, text)

	var surfaces []string
	for _, c := range cands {
		if c.Strategy == "acronym-pair" {
			surfaces = append(surfaces, c.Surface)
		}
	}
	if len(surfaces) != 2 {
		t.Fatalf("got %d acronym-pair candidates %v, want 2", len(surfaces), surfaces)
	}
	if surfaces[0] != "DataFlow Technologies" || surfaces[1] != "DFT" {
		t.Errorf("got surfaces %v, want [DataFlow Technologies DFT]", surfaces)
	}
}
