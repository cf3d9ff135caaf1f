// Package mint assigns entity IDs, infers types from cluster evidence, and
// materialises canonical/alias/span data for promoted clusters (spec.md
// §4.6).
package mint

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// TypeInference records the winning signal, vote breakdown, and confidence
// for later review, per spec.md §4.6.
type TypeInference struct {
	Type       model.EntityType
	Signal     string // "headword" | "ner_consensus" | "grammatical" | "capitalisation" | "underdetermined"
	NERVotes   map[string]int
	Confidence float64
}

var nerToType = map[string]model.EntityType{
	"PERSON":      model.TypePerson,
	"ORG":         model.TypeOrg,
	"GPE":         model.TypePlace,
	"LOC":         model.TypePlace,
	"DATE":        model.TypeDate,
	"WORK_OF_ART": model.TypeWork,
	"NORP":        model.TypeHouse,
}

// InferType runs the four-signal priority inference of spec.md §4.6 over a
// promoted cluster.
func InferType(c *model.MentionCluster, b *lexicon.Bundle) TypeInference {
	if t, ok := headwordSignal(c, b); ok {
		return TypeInference{Type: t, Signal: "headword", NERVotes: c.NERHints, Confidence: 0.85}
	}

	if t, conf, ok := nerConsensusSignal(c); ok {
		return TypeInference{Type: t, Signal: "ner_consensus", NERVotes: c.NERHints, Confidence: conf}
	}

	if hasPossRole(c) {
		return TypeInference{Type: model.TypePerson, Signal: "grammatical", NERVotes: c.NERHints, Confidence: 0.7}
	}

	if t, conf, ok := capitalisationSignal(c); ok {
		return TypeInference{Type: t, Signal: "capitalisation", NERVotes: c.NERHints, Confidence: conf}
	}

	return TypeInference{
		Type:       model.TypePerson,
		Signal:     model.TypeInferenceUnderdetermined,
		NERVotes:   c.NERHints,
		Confidence: 0.5,
	}
}

func headword(canonical string) string {
	fields := strings.Fields(strings.ToLower(canonical))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func headwordSignal(c *model.MentionCluster, b *lexicon.Bundle) (model.EntityType, bool) {
	types := b.FantasyTypesFor(headword(c.Canonical))
	for name := range types {
		et := model.EntityType(name)
		if et.Valid() {
			return et, true
		}
	}
	return "", false
}

func nerConsensusSignal(c *model.MentionCluster) (model.EntityType, float64, bool) {
	if len(c.NERHints) == 0 {
		return "", 0, false
	}
	bestLabel, maxVotes, total := "", 0, 0
	for label, n := range c.NERHints {
		total += n
		if n > maxVotes {
			bestLabel, maxVotes = label, n
		}
	}
	t, ok := nerToType[bestLabel]
	if !ok {
		return "", 0, false
	}
	confidence := 0.6 + 0.3*(float64(maxVotes)/float64(total))
	return t, confidence, true
}

func hasPossRole(c *model.MentionCluster) bool {
	for _, m := range c.Mentions {
		for _, t := range m.Tokens {
			if t.Dep == "poss" {
				return true
			}
		}
	}
	return false
}

func capitalisationSignal(c *model.MentionCluster) (model.EntityType, float64, bool) {
	multiWord := len(strings.Fields(c.Canonical)) > 1
	for _, m := range c.Mentions {
		if len(m.Tokens) == 0 {
			continue
		}
		if m.Tokens[0].I == 0 {
			continue // sentence-initial occurrence doesn't count
		}
		if !startsUpper(m.Surface) {
			continue
		}
		if multiWord {
			return model.TypePerson, 0.6, true
		}
		return model.TypePerson, 0.5, true
	}
	return "", 0, false
}

func startsUpper(s string) bool {
	for _, r := range s {
		return r >= 'A' && r <= 'Z'
	}
	return false
}
