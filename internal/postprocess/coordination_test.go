package postprocess

import (
	"testing"

	"github.com/nucleus/entity-extractor/internal/model"
)

// TestSplitCoordinationMintsTwoIndependentEntities guards scenario #2
// ("James and Lily Potter lived in Godric's Hollow.") end to end at the
// postprocess layer: a single coordinated PERSON entity must split into two
// independently identified entities, not one entity with two spans, with
// the shared surname attached to the bare first name and both bare first
// names retained as aliases.
func TestSplitCoordinationMintsTwoIndependentEntities(t *testing.T) {
	entities := []model.Entity{
		{ID: "e1", Type: model.TypePerson, Canonical: "James and Lily Potter"},
	}
	spans := []model.EntitySpan{
		{EntityID: "e1", Start: 0, End: 21, Surface: "James and Lily Potter", Source: model.SourceNER},
	}

	outEntities, outSpans := SplitCoordination(entities, spans)

	if len(outEntities) != 2 {
		t.Fatalf("got %d entities, want 2", len(outEntities))
	}
	byCanonical := map[string]model.Entity{}
	for _, e := range outEntities {
		byCanonical[e.Canonical] = e
	}
	james, ok := byCanonical["James Potter"]
	if !ok {
		t.Fatalf("expected a 'James Potter' entity among %+v", outEntities)
	}
	lily, ok := byCanonical["Lily Potter"]
	if !ok {
		t.Fatalf("expected a 'Lily Potter' entity among %+v", outEntities)
	}
	if james.ID == lily.ID {
		t.Fatalf("James Potter and Lily Potter share one entity ID %q, want two independent IDs", james.ID)
	}
	if !james.HasAlias("James") {
		t.Errorf("James Potter aliases = %v, want to include James", james.Aliases)
	}
	if !lily.HasAlias("Lily") {
		t.Errorf("Lily Potter aliases = %v, want to include Lily", lily.Aliases)
	}

	if len(outSpans) != 2 {
		t.Fatalf("got %d spans, want 2", len(outSpans))
	}
	for _, s := range outSpans {
		if s.EntityID != james.ID && s.EntityID != lily.ID {
			t.Errorf("span %+v references neither split entity", s)
		}
	}
}
