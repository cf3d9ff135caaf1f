package postprocess

import (
	"testing"

	"github.com/nucleus/entity-extractor/internal/model"
)

// TestPreserveTitleAliasesAddsTitledFormForBareSurname guards scenario #4
// ("Professor McGonagall greeted McGonagall."): a bare-surname entity gains
// its titled form as an alias when that titled form occurs in the text.
func TestPreserveTitleAliasesAddsTitledFormForBareSurname(t *testing.T) {
	docText := "Professor McGonagall greeted McGonagall."
	entities := []model.Entity{
		{ID: "e1", Type: model.TypePerson, Canonical: "McGonagall"},
	}

	out := PreserveTitleAliases(entities, docText)

	if len(out) != 1 {
		t.Fatalf("got %d entities, want 1", len(out))
	}
	if !out[0].HasAlias("Professor McGonagall") {
		t.Errorf("aliases = %v, want to include 'Professor McGonagall'", out[0].Aliases)
	}
}

// TestPreserveTitleAliasesIgnoresMultiWordCanonical checks that the
// titled-form alias is only attached to bare-surname entities, not ones
// whose canonical already spans more than one word.
func TestPreserveTitleAliasesIgnoresMultiWordCanonical(t *testing.T) {
	docText := "Professor McGonagall taught Transfiguration."
	entities := []model.Entity{
		{ID: "e1", Type: model.TypePerson, Canonical: "Minerva McGonagall"},
	}

	out := PreserveTitleAliases(entities, docText)

	if out[0].HasAlias("Professor McGonagall") {
		t.Errorf("did not expect a titled alias on a multi-word canonical, got %v", out[0].Aliases)
	}
}
