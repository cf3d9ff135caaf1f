package postprocess

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

var (
	alsoKnownAs   = regexp.MustCompile(`([A-Z][\w' .-]+?),?\s+(?:also|commonly)\s+known as\s+([A-Z][\w' .-]+)`)
	akaPattern    = regexp.MustCompile(`([A-Z][\w' .-]+?)\s*\(aka\s+([A-Z][\w' .-]+)\)`)
	calledPattern = regexp.MustCompile(`([A-Z][\w' .-]+?)\s+called\s+([A-Z][\w' .-]+)`)
)

// ApplyExplicitAliasPatterns scans docText for "X, (also|commonly) known as
// Y", "X (aka Y)", and "X called Y" and merges the corresponding entities
// (matched by canonical/alias surface). For "commonly known as", the alias
// becomes the new canonical (spec.md §4.7).
func ApplyExplicitAliasPatterns(entities []model.Entity, spans []model.EntitySpan, docText string) ([]model.Entity, []model.EntitySpan) {
	byName := func() map[string]string {
		m := map[string]string{}
		for _, e := range entities {
			m[strings.ToLower(e.Canonical)] = e.ID
			for _, a := range e.Aliases {
				m[strings.ToLower(a)] = e.ID
			}
		}
		return m
	}

	apply := func(pattern *regexp.Regexp, promoteAlias bool) {
		for _, m := range pattern.FindAllStringSubmatch(docText, -1) {
			xName, yName := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			names := byName()
			xID, xok := names[strings.ToLower(xName)]
			yID, yok := names[strings.ToLower(yName)]
			if !xok {
				continue
			}
			if !yok {
				entities = addBareAlias(entities, xID, yName)
				continue
			}
			if xID == yID {
				continue
			}
			// Only a "commonly known as" match promotes the alias.
			if promoteAlias && strings.HasPrefix(strings.TrimLeft(strings.ToLower(m[0][len(m[1]):]), ", \t\r\n"), "commonly") {
				entities, spans = mergeEntity(entities, spans, yID, xID)
			} else {
				entities, spans = mergeEntity(entities, spans, xID, yID)
			}
		}
	}

	apply(alsoKnownAs, true)
	apply(akaPattern, false)
	apply(calledPattern, false)

	return entities, spans
}

func addBareAlias(entities []model.Entity, id, alias string) []model.Entity {
	for i := range entities {
		if entities[i].ID == id {
			entities[i].AddAlias(alias)
		}
	}
	return entities
}
