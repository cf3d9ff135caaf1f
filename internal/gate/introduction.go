package gate

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// DetectIntroductionCue reports whether c is immediately preceded by "named"
// ("named Hagrid") or immediately followed by a comma then an optional
// article and a person-role noun ("Hagrid, a groundskeeper,") — the two
// textual introduction cues of spec.md §4.4 that an appos dependency role
// alone does not always capture. b.PersonRoles supplies the closed role
// vocabulary. Callers set Candidate.Strategy to "introduction-cue" when this
// returns true, so model.MentionCluster.HasIntroductionPattern picks it up.
func DetectIntroductionCue(c model.Candidate, sent model.ParsedSentence, b *lexicon.Bundle) bool {
	if len(c.Tokens) == 0 {
		return false
	}
	first := c.Tokens[0]
	last := c.Tokens[len(c.Tokens)-1]

	if prev, ok := sent.TokenAt(first.I - 1); ok && strings.ToLower(prev.Text) == "named" {
		return true
	}

	comma, ok := sent.TokenAt(last.I + 1)
	if !ok || comma.Text != "," {
		return false
	}
	idx := last.I + 2
	if det, ok := sent.TokenAt(idx); ok {
		switch strings.ToLower(det.Text) {
		case "a", "an", "the":
			idx++
		}
	}
	for offset := 0; offset < 3; offset++ {
		tok, ok := sent.TokenAt(idx + offset)
		if !ok {
			break
		}
		if tok.Text == "," || tok.Text == "." {
			break
		}
		if b.PersonRoles[strings.ToLower(tok.Text)] {
			return true
		}
	}
	return false
}
