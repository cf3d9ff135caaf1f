package nominate

import (
	"strings"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

var determiners = map[string]bool{"the": true, "a": true, "an": true}

// NERNominator groups runs of consecutive tokens sharing a non-empty NER
// label, breaking on a token gap, a coordination conjunction, or a
// title-word transition (spec.md §4.2).
func NERNominator(b *lexicon.Bundle) Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		var out []model.Candidate
		toks := sent.Tokens
		i := 0
		for i < len(toks) {
			if toks[i].Ent == "" {
				i++
				continue
			}
			j := i + 1
			for j < len(toks) && toks[j].Ent == toks[i].Ent && contiguous(toks[j-1], toks[j]) && !breaksRun(toks[j-1], toks[j], b) {
				j++
			}
			if toks[i].Ent == "PERSON" {
				if k, ok := bridgePersonCoordination(toks, j); ok {
					j = k
				}
			}
			run := toks[i:j]
			run = stripLeadingDeterminers(run)
			run = extendForParticles(run, toks, j, b)
			run = extendBackForTitle(run, toks, i, b)
			if len(run) > 0 {
				out = append(out, build(run, model.SourceNER, "ner-run", sentIdx, toks[i].Ent))
			}
			i = j
		}
		return out
	}
}

func contiguous(a, b model.Token) bool {
	return b.Start-a.End <= 1
}

func breaksRun(prev, cur model.Token, b *lexicon.Bundle) bool {
	lower := strings.ToLower(prev.Text)
	if lower == "and" || lower == "or" || (prev.Text == "&" && prev.POS == "CCONJ") {
		return true
	}
	if b.IsTitlePrefix(strings.ToLower(cur.Text)) {
		return true
	}
	return false
}

// bridgePersonCoordination extends a PERSON run across a single "and"
// conjunction into an immediately following PERSON run ("James and Lily
// Potter"), so postprocess.SplitCoordination has a combined span to split
// and attach the shared surname from (spec.md §4.7 scenario #2). connIdx is
// the index just past the first run, where the loop in NERNominator
// stopped because the conjunction carries no NER label of its own.
func bridgePersonCoordination(toks []model.Token, connIdx int) (int, bool) {
	if connIdx == 0 || connIdx >= len(toks) {
		return 0, false
	}
	conn := toks[connIdx]
	if strings.ToLower(conn.Text) != "and" || !contiguous(toks[connIdx-1], conn) {
		return 0, false
	}
	k := connIdx + 1
	if k >= len(toks) || toks[k].Ent != "PERSON" || !contiguous(conn, toks[k]) {
		return 0, false
	}
	for k < len(toks) && toks[k].Ent == "PERSON" && contiguous(toks[k-1], toks[k]) {
		k++
	}
	return k, true
}

func stripLeadingDeterminers(run []model.Token) []model.Token {
	if len(run) > 1 && determiners[strings.ToLower(run[0].Text)] {
		return run[1:]
	}
	return run
}

func extendForParticles(run []model.Token, all []model.Token, nextIdx int, b *lexicon.Bundle) []model.Token {
	if len(run) == 0 || run[len(run)-1].Ent != "PERSON" {
		return run
	}
	idx := nextIdx
	for idx+1 < len(all) {
		particle := all[idx]
		following := all[idx+1]
		if !b.NameParticles[strings.ToLower(particle.Text)] {
			break
		}
		if following.POS != "PROPN" {
			break
		}
		run = append(run, particle, following)
		idx += 2
	}
	return run
}

func extendBackForTitle(run []model.Token, all []model.Token, firstIdx int, b *lexicon.Bundle) []model.Token {
	if firstIdx == 0 {
		return run
	}
	prev := all[firstIdx-1]
	if b.IsTitlePrefix(strings.ToLower(strings.TrimSuffix(prev.Text, "."))) {
		out := make([]model.Token, 0, len(run)+1)
		out = append(out, prev)
		out = append(out, run...)
		return out
	}
	return run
}

func build(run []model.Token, src model.Source, strategy string, sentIdx int, nerHint string) model.Candidate {
	surface := surfaceOf(run)
	return model.Candidate{
		Surface:       surface,
		Start:         run[0].Start,
		End:           run[len(run)-1].End,
		Tokens:        append([]model.Token(nil), run...),
		Source:        src,
		SentenceIndex: sentIdx,
		NERHint:       nerHint,
		Strategy:      strategy,
	}
}

func surfaceOf(run []model.Token) string {
	if len(run) == 0 {
		return ""
	}
	start, end := run[0].Start, run[len(run)-1].End
	_ = start
	_ = end
	var sb strings.Builder
	for i, t := range run {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}
