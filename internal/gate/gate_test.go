package gate

import (
	"testing"

	"github.com/nucleus/entity-extractor/internal/model"
)

func TestGateRejectsLowercaseRawSpan(t *testing.T) {
	c := model.Candidate{Surface: "the dog ran"}
	sent := model.ParsedSentence{}
	res, rewritten := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictNonEntity {
		t.Fatalf("got verdict %v, want NON_ENTITY", res.Verdict)
	}
	if rewritten != nil {
		t.Fatalf("did not expect a rewritten candidate")
	}
}

func TestGateAcceptsProperNoun(t *testing.T) {
	c := model.Candidate{Surface: "Harry Potter"}
	sent := model.ParsedSentence{}
	res, _ := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictDurable {
		t.Fatalf("got verdict %v, want DURABLE_CANDIDATE", res.Verdict)
	}
}

func TestGateRejectsRepeatedLetterInterjection(t *testing.T) {
	c := model.Candidate{Surface: "Aaaaah"}
	sent := model.ParsedSentence{}
	res, _ := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictNonEntity {
		t.Fatalf("got verdict %v, want NON_ENTITY", res.Verdict)
	}
}

func TestGateFlagsImperativeObjectAsContextOnly(t *testing.T) {
	// "Tell Harry the news." - sentence-initial root verb "tell" governs
	// "Harry" as its dobj, the structural signature of an imperative.
	sent := model.ParsedSentence{
		Start: 0, End: 20,
		Tokens: []model.Token{
			{I: 0, Text: "Tell", Lemma: "tell", POS: "VERB", Dep: "ROOT", Head: 0},
			{I: 1, Text: "Harry", Lemma: "Harry", POS: "PROPN", Dep: "dobj", Head: 0, Start: 5, End: 10},
			{I: 2, Text: "the", Lemma: "the", POS: "DET", Dep: "det", Head: 3},
			{I: 3, Text: "news", Lemma: "news", POS: "NOUN", Dep: "dobj", Head: 0},
		},
	}
	harry := sent.Tokens[1]
	c := model.Candidate{Surface: "Harry", Start: 5, End: 10, Tokens: []model.Token{harry}}
	h := Hints{HeadRole: "dobj", GoverningVerb: "tell"}
	res, rewritten := Gate(c, sent, h)
	if res.Verdict != model.VerdictContextOnly {
		t.Fatalf("got verdict %v, want CONTEXT_ONLY", res.Verdict)
	}
	if res.Reason != string(model.ReasonImperativeSingle) {
		t.Fatalf("got reason %q, want %q", res.Reason, model.ReasonImperativeSingle)
	}
	if rewritten != nil {
		t.Fatalf("did not expect a rewritten candidate")
	}
}

func TestGateDoesNotFlagNonImperativeDobjAsContextOnly(t *testing.T) {
	// "She told Harry the news." has a subject before the verb, so it is not
	// an imperative even though Harry is still the dobj of "told".
	sent := model.ParsedSentence{
		Start: 0, End: 26,
		Tokens: []model.Token{
			{I: 0, Text: "She", Lemma: "she", POS: "PRON", Dep: "nsubj", Head: 1},
			{I: 1, Text: "told", Lemma: "tell", POS: "VERB", Dep: "ROOT", Head: 1},
			{I: 2, Text: "Harry", Lemma: "Harry", POS: "PROPN", Dep: "dobj", Head: 1, Start: 9, End: 14},
		},
	}
	harry := sent.Tokens[2]
	c := model.Candidate{Surface: "Harry", Start: 9, End: 14, Tokens: []model.Token{harry}}
	h := Hints{HeadRole: "dobj", GoverningVerb: "tell"}
	res, _ := Gate(c, sent, h)
	if res.Verdict != model.VerdictDurable {
		t.Fatalf("got verdict %v, want DURABLE_CANDIDATE", res.Verdict)
	}
}

func TestGateFlagsAdjectivalDemonymAsContextOnly(t *testing.T) {
	// "the French countryside" - "French" is an adjectival nationality use,
	// not a reference to the people or country itself.
	sent := model.ParsedSentence{Start: 0, End: 20}
	frenchTok := model.Token{I: 1, Text: "French", Lemma: "french", POS: "ADJ", Dep: "amod", Head: 2}
	c := model.Candidate{Surface: "French", Tokens: []model.Token{frenchTok}}
	h := Hints{HeadRole: "amod"}
	res, _ := Gate(c, sent, h)
	if res.Verdict != model.VerdictContextOnly {
		t.Fatalf("got verdict %v, want CONTEXT_ONLY", res.Verdict)
	}
	if res.Reason != string(model.ReasonAdjectivalDemonym) {
		t.Fatalf("got reason %q, want %q", res.Reason, model.ReasonAdjectivalDemonym)
	}
}

func TestGateDoesNotFlagMultiTokenCapitalizedPhraseAsDemonym(t *testing.T) {
	c := model.Candidate{Surface: "Harry Potter"}
	sent := model.ParsedSentence{}
	res, _ := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictDurable {
		t.Fatalf("got verdict %v, want DURABLE_CANDIDATE", res.Verdict)
	}
}

func TestGateFlagsVocativeAsContextOnly(t *testing.T) {
	// "Run, Harry!" - Harry is addressed directly, a vocative, not a
	// reference being introduced into the discourse.
	sent := model.ParsedSentence{Start: 0, End: 12}
	harryTok := model.Token{I: 2, Text: "Harry", Lemma: "Harry", POS: "PROPN", Dep: "vocative", Head: 0}
	c := model.Candidate{Surface: "Harry", Start: 5, End: 10, Tokens: []model.Token{harryTok}}
	res, _ := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictContextOnly {
		t.Fatalf("got verdict %v, want CONTEXT_ONLY", res.Verdict)
	}
	if res.Reason != "vocative" {
		t.Fatalf("got reason %q, want %q", res.Reason, "vocative")
	}
}

func TestGateFlagsQuotedSloganAsContextOnly(t *testing.T) {
	c := model.Candidate{Surface: "\"Dumbledore's Army\""}
	sent := model.ParsedSentence{}
	res, _ := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictContextOnly {
		t.Fatalf("got verdict %v, want CONTEXT_ONLY", res.Verdict)
	}
	if res.Reason != "quoted-slogan" {
		t.Fatalf("got reason %q, want %q", res.Reason, "quoted-slogan")
	}
}

func TestGateRewritesPrepositionLedFragment(t *testing.T) {
	c := model.Candidate{Surface: "of the ancient castle"}
	sent := model.ParsedSentence{}
	res, rewritten := Gate(c, sent, Hints{})
	if res.Verdict != model.VerdictNonEntity {
		t.Fatalf("got verdict %v, want NON_ENTITY for the PP itself", res.Verdict)
	}
	if rewritten == nil {
		t.Fatalf("expected a rewritten NP object candidate")
	}
	if rewritten.Surface != "the ancient castle" {
		t.Fatalf("rewritten surface = %q, want %q", rewritten.Surface, "the ancient castle")
	}
}
