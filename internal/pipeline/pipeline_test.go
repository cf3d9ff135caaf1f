package pipeline

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

func tok(i int, text, pos, dep string, head int, ent string, start int) model.Token {
	return model.Token{I: i, Text: text, Lemma: text, POS: pos, Dep: dep, Head: head, Ent: ent, Start: start, End: start + len(text)}
}

func TestExtractPromotesRepeatedMention(t *testing.T) {
	text := "Harry Potter walked into the hall. Harry Potter smiled at the crowd."
	doc := model.ParsedDocument{
		Sentences: []model.ParsedSentence{
			{
				Start: 0, End: 35,
				Tokens: []model.Token{
					tok(0, "Harry", "PROPN", "compound", 1, "PERSON", 0),
					tok(1, "Potter", "PROPN", "nsubj", 2, "PERSON", 6),
					tok(2, "walked", "VERB", "ROOT", 2, "", 13),
				},
			},
			{
				Start: 35, End: 68,
				Tokens: []model.Token{
					tok(0, "Harry", "PROPN", "compound", 1, "PERSON", 35),
					tok(1, "Potter", "PROPN", "nsubj", 2, "PERSON", 41),
					tok(2, "smiled", "VERB", "ROOT", 2, "", 48),
				},
			},
		},
	}

	in := Input{Text: text, Parsed: doc, Config: model.DefaultConfig()}
	result := Extract(in, testBundle(t), time.Unix(0, 0))

	if len(result.Entities) == 0 {
		t.Fatalf("expected at least one entity to be promoted")
	}
	found := false
	for _, e := range result.Entities {
		if e.Canonical == "Harry Potter" {
			found = true
			if e.Type != model.TypePerson {
				t.Errorf("type = %v, want PERSON", e.Type)
			}
		}
	}
	if !found {
		t.Errorf("expected an entity canonicalised as 'Harry Potter', got %+v", result.Entities)
	}
}

// TestExtractSplitsCoordinatedPersonEntity exercises scenario #2 end to end:
// "James and Lily Potter lived in Godric's Hollow." must yield two
// independent PERSON entities, James Potter and Lily Potter, not one entity
// spanning the coordination.
func TestExtractSplitsCoordinatedPersonEntity(t *testing.T) {
	text := "James and Lily Potter lived in Godric's Hollow."
	doc := model.ParsedDocument{
		Sentences: []model.ParsedSentence{
			{
				Start: 0, End: 47,
				Tokens: []model.Token{
					tok(0, "James", "PROPN", "compound", 3, "PERSON", 0),
					tok(1, "and", "CCONJ", "cc", 3, "", 6),
					tok(2, "Lily", "PROPN", "conj", 3, "PERSON", 10),
					tok(3, "Potter", "PROPN", "nsubj", 4, "PERSON", 15),
					tok(4, "lived", "VERB", "ROOT", 4, "", 22),
					tok(5, "in", "ADP", "prep", 4, "", 28),
					tok(6, "Godric's", "PROPN", "poss", 7, "", 31),
					tok(7, "Hollow", "PROPN", "pobj", 5, "", 40),
				},
			},
		},
	}
	in := Input{Text: text, Parsed: doc, Config: model.DefaultConfig()}
	result := Extract(in, testBundle(t), time.Unix(0, 0))

	byCanonical := map[string]model.Entity{}
	for _, e := range result.Entities {
		byCanonical[e.Canonical] = e
	}
	if _, ok := byCanonical["James and Lily Potter"]; ok {
		t.Fatalf("coordinated span was not split, found a single 'James and Lily Potter' entity")
	}
	james, ok := byCanonical["James Potter"]
	if !ok {
		t.Fatalf("expected a 'James Potter' entity among %+v", result.Entities)
	}
	lily, ok := byCanonical["Lily Potter"]
	if !ok {
		t.Fatalf("expected a 'Lily Potter' entity among %+v", result.Entities)
	}
	if james.ID == lily.ID {
		t.Fatalf("James Potter and Lily Potter share one entity ID %q", james.ID)
	}
	if james.Type != model.TypePerson || lily.Type != model.TypePerson {
		t.Errorf("got types %v / %v, want PERSON / PERSON", james.Type, lily.Type)
	}
	if !james.HasAlias("James") {
		t.Errorf("James Potter aliases = %v, want to include James", james.Aliases)
	}
	if !lily.HasAlias("Lily") {
		t.Errorf("Lily Potter aliases = %v, want to include Lily", lily.Aliases)
	}
}

// TestExtractMergesAcronymIntoExpansion exercises scenario #5 end to end:
// "DataFlow Technologies (DFT) announced a merger. DFT results beat
// expectations." must yield one ORG entity canonicalised as the acronym,
// with the expansion folded in as an alias.
func TestExtractMergesAcronymIntoExpansion(t *testing.T) {
	text := "DataFlow Technologies (DFT) announced a merger. DFT results beat expectations."
	doc := model.ParsedDocument{
		Sentences: []model.ParsedSentence{
			{Start: 0, End: 48},
			{Start: 48, End: 78},
		},
	}
	in := Input{Text: text, Parsed: doc, Config: model.PermissiveConfig()}
	result := Extract(in, testBundle(t), time.Unix(0, 0))

	byCanonical := map[string]model.Entity{}
	for _, e := range result.Entities {
		byCanonical[e.Canonical] = e
	}
	if _, ok := byCanonical["DataFlow Technologies"]; ok {
		t.Fatalf("expansion was not merged, found a standalone 'DataFlow Technologies' entity among %+v", result.Entities)
	}
	dft, ok := byCanonical["DFT"]
	if !ok {
		t.Fatalf("expected a 'DFT' entity among %+v", result.Entities)
	}
	if dft.Type != model.TypeOrg {
		t.Errorf("type = %v, want ORG", dft.Type)
	}
	if !dft.HasAlias("DataFlow Technologies") {
		t.Errorf("DFT aliases = %v, want to include DataFlow Technologies", dft.Aliases)
	}
	for _, s := range result.Spans {
		if s.EntityID != dft.ID {
			t.Errorf("span %+v was not folded into the merged DFT entity", s)
		}
	}
}

// TestExtractResolvesOrgAndPersonHandlesIndependently exercises scenario #6:
// a social handle must not be forced to PERSON. "@TechCrunch" is whitelisted
// as ORG; "@tim_cook" has no organisational evidence and falls through to
// the oracle's PERSON default.
func TestExtractResolvesOrgAndPersonHandlesIndependently(t *testing.T) {
	text := "@TechCrunch reported the news. @tim_cook retired."
	doc := model.ParsedDocument{
		Sentences: []model.ParsedSentence{
			{Start: 0, End: 31},
			{Start: 31, End: 49},
		},
	}
	in := Input{Text: text, Parsed: doc, Config: model.PermissiveConfig()}
	result := Extract(in, testBundle(t), time.Unix(0, 0))

	byCanonical := map[string]model.Entity{}
	for _, e := range result.Entities {
		byCanonical[e.Canonical] = e
	}
	techCrunch, ok := byCanonical["@TechCrunch"]
	if !ok {
		t.Fatalf("expected an '@TechCrunch' entity among %+v", result.Entities)
	}
	if techCrunch.Type != model.TypeOrg {
		t.Errorf("@TechCrunch type = %v, want ORG", techCrunch.Type)
	}
	timCook, ok := byCanonical["@tim_cook"]
	if !ok {
		t.Fatalf("expected an '@tim_cook' entity among %+v", result.Entities)
	}
	if timCook.Type != model.TypePerson {
		t.Errorf("@tim_cook type = %v, want PERSON", timCook.Type)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	text := "Harry Potter walked into the hall. Harry Potter smiled at the crowd."
	doc := model.ParsedDocument{
		Sentences: []model.ParsedSentence{
			{
				Start: 0, End: 35,
				Tokens: []model.Token{
					tok(0, "Harry", "PROPN", "compound", 1, "PERSON", 0),
					tok(1, "Potter", "PROPN", "nsubj", 2, "PERSON", 6),
					tok(2, "walked", "VERB", "ROOT", 2, "", 13),
				},
			},
		},
	}
	in := Input{Text: text, Parsed: doc, Config: model.DefaultConfig()}
	b := testBundle(t)
	stamp := time.Unix(1000, 0)

	r1 := Extract(in, b, stamp)
	r2 := Extract(in, b, stamp)

	if len(r1.Entities) != len(r2.Entities) {
		t.Fatalf("entity count differs across runs: %d vs %d", len(r1.Entities), len(r2.Entities))
	}
	for i := range r1.Entities {
		if r1.Entities[i].Canonical != r2.Entities[i].Canonical || r1.Entities[i].Type != r2.Entities[i].Type {
			t.Errorf("entity %d differs across runs: %+v vs %+v", i, r1.Entities[i], r2.Entities[i])
		}
	}
}
