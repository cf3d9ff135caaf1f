package mint

import (
	"testing"
	"time"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

func testBundle(t *testing.T) *lexicon.Bundle {
	t.Helper()
	b, err := lexicon.Load("../../lexicons")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestMintAssignsUUIDAndCanonical(t *testing.T) {
	b := testBundle(t)
	c := model.NewMentionCluster("c1", model.DurableMention{
		Candidate: model.Candidate{Surface: "Harry Potter", Start: 0, End: 12, NERHint: "PERSON"},
	})
	m := Mint(c, b, time.Time{})
	if m.Entity.ID == "" {
		t.Errorf("expected non-empty entity ID")
	}
	if m.Entity.Canonical != "Harry Potter" {
		t.Errorf("canonical = %q, want Harry Potter", m.Entity.Canonical)
	}
	if m.Entity.Type != model.TypePerson {
		t.Errorf("type = %v, want PERSON", m.Entity.Type)
	}
}

// TestInferTypeSuppressesSentenceInitialOnlyCapitalisation checks spec.md
// §8 invariant 9: a cluster whose every mention is sentence-initial must
// not be typed via the capitalisation signal (it has no non-sentence-
// initial occurrence to justify the inference), so it falls through to the
// underdetermined default instead.
func TestInferTypeSuppressesSentenceInitialOnlyCapitalisation(t *testing.T) {
	b := testBundle(t)
	c := model.NewMentionCluster("c1", model.DurableMention{
		Candidate: model.Candidate{
			Surface: "Frodo", Start: 0, End: 5,
			Tokens: []model.Token{{I: 0, Text: "Frodo", POS: "PROPN"}},
		},
	})
	c.Add(model.DurableMention{
		Candidate: model.Candidate{
			Surface: "Frodo", Start: 25, End: 30,
			Tokens: []model.Token{{I: 0, Text: "Frodo", POS: "PROPN"}},
		},
	})

	inference := InferType(c, b)
	if inference.Signal == "capitalisation" {
		t.Fatalf("got signal %q, want something other than capitalisation: every mention is sentence-initial (I==0)", inference.Signal)
	}
	if inference.Signal != model.TypeInferenceUnderdetermined {
		t.Errorf("signal = %q, want %q (no other evidence present)", inference.Signal, model.TypeInferenceUnderdetermined)
	}
}

// TestInferTypeAllowsNonSentenceInitialCapitalisation is the positive
// counterpart: once a mention occurs past the start of its sentence, the
// capitalisation signal is allowed to fire.
func TestInferTypeAllowsNonSentenceInitialCapitalisation(t *testing.T) {
	b := testBundle(t)
	c := model.NewMentionCluster("c1", model.DurableMention{
		Candidate: model.Candidate{
			Surface: "Zalgorath", Start: 10, End: 19,
			Tokens: []model.Token{{I: 2, Text: "Zalgorath", POS: "PROPN"}},
		},
	})

	inference := InferType(c, b)
	if inference.Signal != "capitalisation" {
		t.Fatalf("got signal %q, want capitalisation", inference.Signal)
	}
	if inference.Type != model.TypePerson {
		t.Errorf("type = %v, want PERSON", inference.Type)
	}
}

func TestClassifyAliasNickname(t *testing.T) {
	b := testBundle(t)
	if got := ClassifyAlias("Jimmy", "James Bond", b); got != AliasStrong {
		t.Errorf("ClassifyAlias(Jimmy, James Bond) = %v, want AliasStrong", got)
	}
	if got := ClassifyAlias("Bond", "James Bond", b); got != AliasAmbiguous {
		t.Errorf("ClassifyAlias(Bond, James Bond) = %v, want AliasAmbiguous", got)
	}
	if got := ClassifyAlias("James Bond", "James Bond", b); got != AliasRejected {
		t.Errorf("ClassifyAlias(James Bond, James Bond) = %v, want AliasRejected", got)
	}
}
