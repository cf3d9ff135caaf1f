package overrides

import (
	"reflect"
	"testing"

	"github.com/nucleus/entity-extractor/internal/model"
)

func TestParseInlineTagsStripsMarkupAndReturnsOverrides(t *testing.T) {
	text := "Harry went to [[Hogwarts::ORG]] with [[Ron::PERSON]]."
	clean, got := ParseInlineTags(text)

	const want = "Harry went to Hogwarts with Ron."
	if clean != want {
		t.Fatalf("clean text = %q, want %q", clean, want)
	}
	if len(got) != 2 {
		t.Fatalf("got %d overrides, want 2", len(got))
	}
	if got[0].Surface != "Hogwarts" || got[0].Type != model.TypeOrg {
		t.Errorf("override[0] = %+v, want Surface=Hogwarts Type=ORG", got[0])
	}
	if clean[got[0].Start:got[0].End] != "Hogwarts" {
		t.Errorf("override[0] span = %q, want Hogwarts", clean[got[0].Start:got[0].End])
	}
	if got[1].Surface != "Ron" || got[1].Type != model.TypePerson {
		t.Errorf("override[1] = %+v, want Surface=Ron Type=PERSON", got[1])
	}
	if clean[got[1].Start:got[1].End] != "Ron" {
		t.Errorf("override[1] span = %q, want Ron", clean[got[1].Start:got[1].End])
	}
}

func TestParseInlineTagsWithoutTagsIsUnchanged(t *testing.T) {
	text := "Harry went to Hogwarts."
	clean, got := ParseInlineTags(text)
	if clean != text {
		t.Fatalf("clean text = %q, want unchanged %q", clean, text)
	}
	if got != nil {
		t.Fatalf("got %v overrides, want none", got)
	}
}

func TestInlineTagRoundTripIsIdempotent(t *testing.T) {
	// spec.md §8: parseInlineTags(text) then re-application of the same
	// tags should yield the same manual overrides.
	original := "James and [[Lily Potter::PERSON]] lived in [[Godric's Hollow::PLACE]]."
	clean, overridesFirst := ParseInlineTags(original)

	retagged := ApplyInlineTags(clean, overridesFirst)
	cleanAgain, overridesSecond := ParseInlineTags(retagged)

	if cleanAgain != clean {
		t.Fatalf("re-parsed clean text = %q, want %q", cleanAgain, clean)
	}
	if !reflect.DeepEqual(overridesFirst, overridesSecond) {
		t.Fatalf("overrides not stable across round-trip:\nfirst:  %+v\nsecond: %+v", overridesFirst, overridesSecond)
	}
}

func TestApplyInlineTagsHandlesMultipleOverridesWithoutShiftingOffsets(t *testing.T) {
	clean := "Hogwarts is run by Dumbledore."
	ovr := []ManualOverride{
		{Surface: "Hogwarts", Type: model.TypeOrg, Start: 0, End: 8},
		{Surface: "Dumbledore", Type: model.TypePerson, Start: 19, End: 29},
	}
	tagged := ApplyInlineTags(clean, ovr)
	cleanAgain, got := ParseInlineTags(tagged)
	if cleanAgain != clean {
		t.Fatalf("clean text = %q, want %q", cleanAgain, clean)
	}
	if !reflect.DeepEqual(got, ovr) {
		t.Fatalf("got overrides %+v, want %+v", got, ovr)
	}
}
