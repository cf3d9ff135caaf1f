package postprocess

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

var titledSurface = regexp.MustCompile(`\b(?:Dr|Mrs|Mr|Ms|Prof|Professor|Lord|Lady|Sir|Dame|Captain|President|Senator|General)\.?\s+([A-Z][a-zA-Z'-]+)\b`)

// PreserveTitleAliases adds a full titled form ("Dr. Wilson") as a strong
// alias when an entity's canonical is a bare surname and that titled form
// appears in docText for the same surname (spec.md §4.7).
func PreserveTitleAliases(entities []model.Entity, docText string) []model.Entity {
	bySurname := map[string]string{}
	for _, m := range titledSurface.FindAllStringSubmatch(docText, -1) {
		surname := m[1]
		bySurname[strings.ToLower(surname)] = strings.TrimSpace(m[0])
	}

	for i, e := range entities {
		if len(strings.Fields(e.Canonical)) != 1 {
			continue
		}
		// Appended directly: AddAlias drops any alias whose title-stripped
		// normal form equals the canonical, which is exactly this case.
		if full, ok := bySurname[strings.ToLower(e.Canonical)]; ok && !entities[i].HasAlias(full) {
			entities[i].Aliases = append(entities[i].Aliases, full)
		}
	}
	return entities
}
