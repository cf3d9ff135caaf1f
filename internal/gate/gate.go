package gate

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/normalize"
)

var (
	interjections    = map[string]bool{"oh": true, "ah": true, "hey": true, "wow": true, "ugh": true, "alas": true}
	deadEndSign      = regexp.MustCompile(`(?i)^dead end$`)
	collectiblePhase = regexp.MustCompile(`(?i)^collecting\s+`)
	leadingPreps     = map[string]bool{"of": true, "in": true, "on": true, "at": true, "to": true, "from": true, "with": true, "for": true, "by": true}
	determiners      = map[string]bool{"the": true, "a": true, "an": true}
)

// isRepeatedLetter reports whether s is a single lowercase word holding a
// run of three or more identical letters ("aaaaah", "hmmm").
func isRepeatedLetter(s string) bool {
	run, longest, prev := 0, 0, rune(0)
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
		if r != prev {
			prev, run = r, 0
		}
		run++
		longest = max(longest, run)
	}
	return longest >= 3
}

// Gate evaluates one candidate against its sentence and hints, returning a
// verdict and (when not DURABLE) a model.RejectReason explaining why.
// Per spec.md §4.3, a rejected preposition-led fragment may be rewritten
// into its NP object and re-gated; rewritten is non-nil only in that case.
func Gate(c model.Candidate, sent model.ParsedSentence, h Hints) (result model.GateResult, rewritten *model.Candidate) {
	surface := strings.TrimSpace(c.Surface)

	if surface == "" {
		return reject(model.ReasonEmpty), nil
	}
	if isRepeatedLetter(strings.ToLower(surface)) {
		return reject(model.ReasonLowercaseFragment), nil
	}
	if interjections[strings.ToLower(surface)] {
		return reject(model.ReasonLowercaseFragment), nil
	}
	if deadEndSign.MatchString(surface) {
		return reject(model.ReasonRoadSign), nil
	}
	if collectiblePhase.MatchString(surface) {
		return reject(model.ReasonCollectiblePattern), nil
	}

	fields := strings.Fields(surface)
	if len(fields) == 0 {
		return reject(model.ReasonEmpty), nil
	}
	first := fields[0]

	if leadingPreps[strings.ToLower(first)] && normalize.IsAllLower(strings.Join(fields[1:], " ")) {
		if len(fields) > 1 {
			objSurface := strings.Join(fields[1:], " ")
			rewrittenCand := c
			rewrittenCand.Surface = objSurface
			return model.GateResult{Verdict: model.VerdictNonEntity, Reason: string(model.ReasonPrepositionFragment)}, &rewrittenCand
		}
		return reject(model.ReasonPrepositionFragment), nil
	}

	if determiners[strings.ToLower(first)] && len(fields) > 1 && normalize.IsAllLower(fields[1]) {
		return reject(model.ReasonDeterminerFragment), nil
	}

	if normalize.IsAllLower(surface) {
		return reject(model.ReasonLowercaseRawSpan), nil
	}

	if normalize.IsCapitalized(surface) && len(fields) >= 2 {
		tail := strings.ToLower(fields[len(fields)-1])
		if commonNouns[tail] {
			return reject(model.ReasonTitleThenCommonNoun), nil
		}
	}

	if h.HeadRole == "dobj" && len(fields) == 1 && !normalize.IsCapitalized(surface) {
		return reject(model.ReasonVerbObjectFragment), nil
	}

	if isVocative(c, sent) {
		return model.GateResult{Verdict: model.VerdictContextOnly, Reason: "vocative"}, nil
	}
	if isImperativeObject(c, sent, h) {
		return model.GateResult{Verdict: model.VerdictContextOnly, Reason: string(model.ReasonImperativeSingle)}, nil
	}
	if isQuotedSlogan(c, sent) {
		return model.GateResult{Verdict: model.VerdictContextOnly, Reason: "quoted-slogan"}, nil
	}
	if isAdjectivalDemonym(c, h) {
		return model.GateResult{Verdict: model.VerdictContextOnly, Reason: string(model.ReasonAdjectivalDemonym)}, nil
	}

	return model.GateResult{Verdict: model.VerdictDurable}, nil
}

var commonNouns = map[string]bool{
	"man": true, "woman": true, "boy": true, "girl": true, "thing": true,
	"day": true, "night": true, "time": true, "way": true,
}

func reject(reason model.RejectReason) model.GateResult {
	return model.GateResult{Verdict: model.VerdictNonEntity, Reason: string(reason)}
}

func isVocative(c model.Candidate, sent model.ParsedSentence) bool {
	if c.End >= sent.End {
		return false
	}
	if len(c.Tokens) == 0 {
		return false
	}
	last := c.Tokens[len(c.Tokens)-1]
	return last.Dep == "vocative"
}

// isImperativeObject reports whether c is the direct object of a sentence-
// initial, subjectless verb ("Tell Harry the news.") — the imperative
// CONTEXT_ONLY trigger of spec.md §4.3.
func isImperativeObject(c model.Candidate, sent model.ParsedSentence, h Hints) bool {
	return h.HeadRole == "dobj" && h.GoverningVerb != "" && sentenceStartsWithVerb(sent, h.GoverningVerb)
}

// sentenceStartsWithVerb reports whether sent's first token is the root verb
// lemma (no preceding subject), the structural signature of an imperative.
func sentenceStartsWithVerb(sent model.ParsedSentence, verbLemma string) bool {
	first, ok := sent.TokenAt(0)
	if !ok {
		return false
	}
	return first.POS == "VERB" && first.IsRoot() && strings.ToLower(first.Lemma) == verbLemma
}

func isQuotedSlogan(c model.Candidate, sent model.ParsedSentence) bool {
	text := c.Surface
	return strings.HasPrefix(text, "\"") || strings.HasPrefix(text, "“")
}

// demonymSuffixes are the common adjectival-nationality endings ("French",
// "American", "Japanese") that, combined with an ADJ part of speech on a
// single-token candidate, mark adjectival demonym use rather than a proper
// noun (spec.md §4.3's fourth CONTEXT_ONLY trigger).
var demonymSuffixes = []string{"ish", "ese", "ian", "an", "i", "ic"}

func isAdjectivalDemonym(c model.Candidate, h Hints) bool {
	if len(c.Tokens) != 1 {
		return false
	}
	t := c.Tokens[0]
	if t.POS != "ADJ" {
		return false
	}
	if h.HeadRole == "amod" || h.HeadRole == "acomp" {
		return true
	}
	lower := strings.ToLower(t.Text)
	for _, suf := range demonymSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}
