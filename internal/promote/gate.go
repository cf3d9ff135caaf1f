package promote

import "github.com/nucleus/entity-extractor/internal/model"

// strongRole dependency roles support rule 3 (allow_strong_ner_singleton).
var strongRoles = map[string]bool{
	"nsubj": true, "dobj": true, "iobj": true, "pobj": true, "appos": true, "attr": true,
}

const headerWindow = 100

// Decision records the outcome of evaluating one cluster against the
// promotion gate.
type Decision struct {
	Promoted bool
	Reason   string // promotion reason when Promoted, else "single_mention" or "weak_evidence"
}

// Evaluate runs the five ordered promotion rules of spec.md §4.5 against c,
// returning the first matching reason.
func Evaluate(c *model.MentionCluster, cfg model.Config) Decision {
	if c.MentionCount() >= cfg.MentionThreshold {
		return Decision{Promoted: true, Reason: "mention_threshold"}
	}

	if cfg.InWhitelist(c.Canonical) {
		return Decision{Promoted: true, Reason: "whitelist"}
	}
	for alias := range c.AliasVariants {
		if cfg.InWhitelist(alias) {
			return Decision{Promoted: true, Reason: "whitelist"}
		}
	}

	if cfg.AllowStrongNERSingleton && c.HasStrongNER() && hasStrongRole(c) {
		return Decision{Promoted: true, Reason: "strong_ner_singleton"}
	}

	if cfg.AllowIntroductionPattern && c.HasIntroductionPattern() {
		return Decision{Promoted: true, Reason: "introduction_pattern"}
	}

	if hasHeaderPosition(c) {
		return Decision{Promoted: true, Reason: "header_position"}
	}

	if c.MentionCount() == 1 {
		return Decision{Promoted: false, Reason: "single_mention"}
	}
	return Decision{Promoted: false, Reason: "weak_evidence"}
}

func hasStrongRole(c *model.MentionCluster) bool {
	for _, m := range c.Mentions {
		for _, t := range m.Tokens {
			if strongRoles[t.Dep] || t.POS == "PROPN" {
				return true
			}
		}
	}
	return false
}

func hasHeaderPosition(c *model.MentionCluster) bool {
	for _, m := range c.Mentions {
		if m.DocumentPosition >= headerWindow {
			continue
		}
		if !allPropnSentenceInitial(m) {
			continue
		}
		return true
	}
	return false
}

func allPropnSentenceInitial(m model.DurableMention) bool {
	if len(m.Tokens) == 0 {
		return false
	}
	for _, t := range m.Tokens {
		if t.POS != "PROPN" {
			return false
		}
	}
	return m.Tokens[0].I == 0
}
