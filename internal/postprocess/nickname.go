package postprocess

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// FoldNicknames merges a single-token PERSON entity whose surface is a
// nickname-equivalent of a multi-token PERSON entity's first name into the
// latter, adding the nickname as an alias (spec.md §4.7).
func FoldNicknames(entities []model.Entity, spans []model.EntitySpan, b *lexicon.Bundle) ([]model.Entity, []model.EntitySpan) {
	firstNameOf := func(canonical string) string {
		fields := strings.Fields(canonical)
		if len(fields) == 0 {
			return ""
		}
		return strings.ToLower(fields[0])
	}

	var nicknameEntities []model.Entity
	var multiWord []model.Entity
	for _, e := range entities {
		if e.Type != model.TypePerson {
			continue
		}
		if len(strings.Fields(e.Canonical)) == 1 {
			nicknameEntities = append(nicknameEntities, e)
		} else {
			multiWord = append(multiWord, e)
		}
	}

	for _, nick := range nicknameEntities {
		canonical, ok := b.CanonicalNickname(nick.Canonical)
		if !ok {
			continue
		}
		for _, target := range multiWord {
			if firstNameOf(target.Canonical) != canonical {
				continue
			}
			entities, spans = mergeEntity(entities, spans, target.ID, nick.ID)
			break
		}
	}
	return entities, spans
}
