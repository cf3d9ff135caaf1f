package lexicon

import "testing"

func TestLoadBundledDefault(t *testing.T) {
	b, err := Load("../../lexicons")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !b.IsTitlePrefix("Professor") {
		t.Errorf("expected 'professor' to be a title prefix")
	}
	if !b.IsStopword("The") {
		t.Errorf("expected 'the' to be a stopword")
	}
	if got, ok := b.CanonicalNickname("Jimmy"); !ok || got != "james" {
		t.Errorf("CanonicalNickname(Jimmy) = %q, %v, want james, true", got, ok)
	}
	if types := b.FantasyTypesFor("dragon"); !types["CREATURE"] {
		t.Errorf("expected dragon to be a CREATURE headword, got %v", types)
	}
	if typ, ok := b.WhitelistType("Hogwarts"); !ok || typ != "ORG" {
		t.Errorf("WhitelistType(Hogwarts) = %q, %v, want ORG, true", typ, ok)
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load("/does/not/exist"); err == nil {
		t.Errorf("expected error for missing directory")
	}
}

func TestLoadMergesMultipleFiles(t *testing.T) {
	b, err := Load("testdata/multi")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !b.IsStopword("the") {
		t.Errorf("base stopword missing after merge")
	}
	if !b.IsTitlePrefix("archmage") {
		t.Errorf("override file's title prefix missing after merge")
	}
}
