// Package gate implements the meaning gate and type oracle of spec.md
// §4.3: per-candidate verdicts (NON_ENTITY / CONTEXT_ONLY / DURABLE) and the
// eight-step type classification priority.
package gate

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
)

// Hints are the dependency-graph-derived context signals spec.md §4.3
// extracts for one candidate: the governing verb lemma, the head token's
// dependency role, the preposition when that role is pobj, nearby
// verbs/prepositions within a five-token window, and the head's NER label.
type Hints struct {
	GoverningVerb string
	HeadRole      string
	Preposition   string
	NearbyVerbs   []string
	NearbyPreps   []string
	HeadNER       string
}

var interestingVerbs = map[string]bool{
	"rule": true, "govern": true, "reign": true, "control": true,
	"lead": true, "head": true, "chair": true, "direct": true, "manage": true,
	"found": true, "establish": true, "create": true, "launch": true,
	"marry": true, "greet": true, "meet": true, "tell": true, "ask": true,
	"travel": true, "go": true, "move": true, "live": true, "dwell": true,
	"study": true, "teach": true, "work": true, "fight": true,
}

// Extract computes Hints for a candidate occupying tokens run within sent.
func Extract(sent model.ParsedSentence, run []model.Token) Hints {
	h := Hints{}
	if len(run) == 0 {
		return h
	}
	head := run[len(run)-1]
	for _, t := range run {
		if t.I == head.I {
			continue
		}
	}
	govHead, ok := sent.HeadOf(head)
	h.HeadRole = head.Dep
	h.HeadNER = head.Ent
	if ok {
		h.GoverningVerb = strings.ToLower(govHead.Lemma)
	} else if head.POS == "VERB" {
		h.GoverningVerb = strings.ToLower(head.Lemma)
	}
	if head.Dep == "pobj" {
		if prepTok, ok := sent.HeadOf(head); ok {
			h.Preposition = strings.ToLower(prepTok.Text)
		}
	}
	lo, hi := head.I-5, head.I+5
	for _, t := range sent.Tokens {
		if t.I < lo || t.I > hi {
			continue
		}
		switch t.POS {
		case "VERB":
			h.NearbyVerbs = append(h.NearbyVerbs, strings.ToLower(t.Lemma))
		case "ADP":
			h.NearbyPreps = append(h.NearbyPreps, strings.ToLower(t.Text))
		}
	}
	return h
}

// HasInterestingRole reports whether the candidate's head token occupies a
// dependency role interesting enough to justify a dependency-nominator
// emission (subject/object of an interesting verb, or pobj of a
// location/education preposition).
func HasInterestingRole(h Hints) bool {
	switch h.HeadRole {
	case "nsubj", "dobj", "iobj":
		return interestingVerbs[h.GoverningVerb]
	case "pobj":
		switch h.Preposition {
		case "in", "to", "from", "at", "near":
			return true
		}
	case "appos", "poss":
		return true
	}
	return false
}
