package gate

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// Classify runs the eight-step type oracle of spec.md §4.3 over a
// candidate's normalised surface and its context hints; it takes no
// caller-supplied fallback type, and its last step always yields PERSON. It
// is a pure function of its inputs. Its only caller is
// internal/pipeline.refineUnderdeterminedType (post-mint type refinement);
// the meaning gate does not call it during nomination filtering.
func Classify(normalised string, h Hints, b *lexicon.Bundle) model.EntityType {
	lower := strings.ToLower(normalised)
	fields := strings.Fields(lower)

	if t, ok := b.WhitelistType(lower); ok {
		if et := model.EntityType(t); et.Valid() {
			return et
		}
	}

	if t, ok := verbObjectType(h); ok {
		return t
	}

	if t, ok := verbSubjectType(h); ok {
		return t
	}

	if t, ok := prepVerbType(h, lower, b); ok {
		return t
	}

	if t, ok := depRoleType(h); ok {
		return t
	}

	if len(fields) > 0 {
		last := fields[len(fields)-1]
		if b.GeographicMarkers[last] {
			return model.TypePlace
		}
		if b.OrganisationalMarkers[last] {
			return model.TypeOrg
		}
		if last == "house" || last == "order" || last == "clan" {
			return model.TypeHouse
		}
		for _, f := range fields {
			if types := b.FantasyTypesFor(f); len(types) > 0 {
				for name := range types {
					return model.EntityType(name)
				}
			}
		}
		if contains(fields, "of") && b.EventKeywords[fields[0]] {
			return model.TypeEvent
		}
	}

	if t, ok := nerMapping(h); ok {
		return t
	}

	return model.TypePerson
}

func verbObjectType(h Hints) (model.EntityType, bool) {
	switch h.GoverningVerb {
	case "rule", "govern", "reign", "control":
		return model.TypePlace, true
	case "lead", "head", "chair", "direct", "manage":
		return model.TypeOrg, true
	case "found", "establish", "create", "launch":
		return model.TypeOrg, true
	case "greet", "meet", "tell", "ask", "marry":
		return model.TypePerson, true
	}
	return "", false
}

func verbSubjectType(h Hints) (model.EntityType, bool) {
	if h.HeadRole != "nsubj" {
		return "", false
	}
	switch h.GoverningVerb {
	case "travel", "go", "move", "live", "dwell", "study", "teach", "work", "fight", "marry":
		return model.TypePerson, true
	}
	return "", false
}

func prepVerbType(h Hints, surface string, b *lexicon.Bundle) (model.EntityType, bool) {
	switch h.GoverningVerb {
	case "travel", "go", "move":
		if hasSchoolLexeme(surface, b) {
			return model.TypeOrg, true
		}
		return model.TypePlace, true
	case "live", "dwell":
		return model.TypePlace, true
	case "study", "teach", "work":
		return model.TypeOrg, true
	case "fight":
		if containsAny(surface, "battle", "war", "siege") {
			return model.TypeEvent, true
		}
		return model.TypePlace, true
	}
	return "", false
}

func hasSchoolLexeme(surface string, b *lexicon.Bundle) bool {
	for _, suffix := range b.SchoolSuffixes {
		if strings.Contains(surface, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func depRoleType(h Hints) (model.EntityType, bool) {
	switch h.HeadRole {
	case "nsubj":
		if len(h.NearbyVerbs) > 0 {
			return model.TypePerson, true
		}
	case "pobj":
		switch h.Preposition {
		case "at":
			if containsAny(strings.Join(h.NearbyVerbs, " "), "study", "teach", "work") {
				return model.TypeOrg, true
			}
		case "in", "to", "from", "near":
			return model.TypePlace, true
		}
	}
	return "", false
}

func nerMapping(h Hints) (model.EntityType, bool) {
	switch h.HeadNER {
	case "PERSON":
		return model.TypePerson, true
	case "ORG":
		return model.TypeOrg, true
	case "GPE":
		if containsAny(h.GoverningVerb, "rule", "govern", "reign", "control") {
			return model.TypePlace, true
		}
		if containsAny(h.GoverningVerb, "study", "teach", "work") {
			return model.TypeOrg, true
		}
		return model.TypePlace, true
	case "LOC":
		return model.TypePlace, true
	case "DATE":
		return model.TypeDate, true
	case "WORK_OF_ART":
		return model.TypeWork, true
	case "NORP":
		return model.TypeHouse, true
	}
	return "", false
}

func contains(fields []string, target string) bool {
	for _, f := range fields {
		if f == target {
			return true
		}
	}
	return false
}
