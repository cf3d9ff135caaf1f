// Package pipeline wires the seven stages of spec.md §2 into one Extract
// call. Every stage runs to completion before the next begins; nothing in
// this package spawns a goroutine or takes a context.Context, per the
// single-threaded, cooperative-free core of spec.md §5.
package pipeline

import (
	"sort"
	"time"

	"github.com/nucleus/entity-extractor/internal/cluster"
	"github.com/nucleus/entity-extractor/internal/gate"
	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/mint"
	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/nominate"
	"github.com/nucleus/entity-extractor/internal/normalize"
	"github.com/nucleus/entity-extractor/internal/postprocess"
	"github.com/nucleus/entity-extractor/internal/preprocess"
	"github.com/nucleus/entity-extractor/internal/promote"
)

// Input is one extraction call's input (spec.md §6).
type Input struct {
	Text   string
	Parsed model.ParsedDocument
	Config model.Config
}

// Extract runs the full seven-stage pipeline over in and returns the
// entity/span/stats result. now is the single timestamp stamped on every
// entity minted during this call (spec.md §8 invariant 6: determinism
// requires the caller, not this function, to vary with wall-clock time).
func Extract(in Input, b *lexicon.Bundle, now time.Time) model.Result {
	stats := model.NewExtractionStats()
	text := preprocess.Clean(in.Text)

	registry := nominate.NewRegistry(b)
	candidates := registry.Run(in.Parsed, text, stats)

	mentions := gateCandidates(candidates, in.Parsed, text, b, stats)

	clusters := cluster.Cluster(mentions, b)
	for _, c := range clusters {
		stats.ClusterFormed(c.MentionCount())
	}

	var minted []mint.Minted
	for _, c := range clusters {
		decision := promote.Evaluate(c, in.Config)
		if !decision.Promoted {
			stats.Deferred(decision.Reason)
			continue
		}
		stats.Promoted(decision.Reason)
		m := mint.Mint(c, b, now)
		if m.Type.Signal == model.TypeInferenceUnderdetermined {
			stats.TypeUnderdetermined()
			refineUnderdeterminedType(&m, c, in.Parsed, b, in.Config)
		}
		stats.MintedEntity(m.Entity.Type)
		minted = append(minted, m)
	}

	entities := make([]model.Entity, 0, len(minted))
	var spans []model.EntitySpan
	originalTypes := map[string]model.EntityType{}
	for _, m := range minted {
		entities = append(entities, m.Entity)
		spans = append(spans, m.Spans...)
		originalTypes[m.Entity.ID] = m.Entity.Type
		stats.AliasesAttached += len(m.Entity.Aliases)
	}

	entities, spans = postprocess.Run(entities, spans, text, b)

	model.SortSpans(spans)
	sortEntitiesBySpan(entities, spans)

	return model.Result{Entities: entities, Spans: spans, Stats: stats}
}

func sortEntitiesBySpan(entities []model.Entity, spans []model.EntitySpan) {
	firstSpan := map[string]int{}
	for _, e := range entities {
		firstSpan[e.ID] = -1
	}
	for _, s := range spans {
		if cur, ok := firstSpan[s.EntityID]; !ok || cur == -1 || s.Start < cur {
			firstSpan[s.EntityID] = s.Start
		}
	}
	sort.Slice(entities, func(i, j int) bool {
		pi, pj := firstSpan[entities[i].ID], firstSpan[entities[j].ID]
		if pi != pj {
			return pi < pj
		}
		return entities[i].Canonical < entities[j].Canonical
	})
}

// gateCandidates runs the meaning gate over every nominated candidate,
// validating spans and applying the PP-rewrite-and-re-gate rule of spec.md
// §4.3. The type oracle is not consulted here; durable candidates enter the
// buffer unclassified.
func gateCandidates(candidates []model.Candidate, doc model.ParsedDocument, text string, b *lexicon.Bundle, stats *model.ExtractionStats) []model.DurableMention {
	var mentions []model.DurableMention
	for _, c := range candidates {
		if !c.Valid() || !c.ValidateSpan(text, normalize.Collapse) {
			stats.Rejected(model.ReasonSpanValidationFailure)
			continue
		}
		sent := sentenceFor(doc, c.SentenceIndex)
		h := gate.Extract(sent, c.Tokens)
		if gate.DetectIntroductionCue(c, sent, b) {
			c.Strategy = "introduction-cue"
		}
		result, rewritten := gate.Gate(c, sent, h)
		stats.Gated(result.Verdict)
		switch result.Verdict {
		case model.VerdictDurable:
			mentions = append(mentions, model.NewDurableMention(c, result))
		case model.VerdictNonEntity:
			stats.Rejected(model.RejectReason(result.Reason))
			if rewritten != nil {
				reResult, _ := gate.Gate(*rewritten, sent, h)
				stats.Gated(reResult.Verdict)
				if reResult.Verdict == model.VerdictDurable {
					mentions = append(mentions, model.NewDurableMention(*rewritten, reResult))
				} else if reResult.Verdict == model.VerdictNonEntity {
					stats.Rejected(model.RejectReason(reResult.Reason))
				}
			}
		}
	}
	return mentions
}

// refineUnderdeterminedType applies the type oracle (spec.md §4.3 "post-
// mint type refinement") when InferType's four evidence signals all missed,
// using the cluster's first mention for context hints. cfg.TypeOracleOverride,
// when set, gets the final say.
func refineUnderdeterminedType(m *mint.Minted, c *model.MentionCluster, doc model.ParsedDocument, b *lexicon.Bundle, cfg model.Config) {
	if len(c.Mentions) == 0 {
		return
	}
	first := c.Mentions[0]
	sent := sentenceFor(doc, first.SentenceIndex)
	h := gate.Extract(sent, first.Tokens)
	refined := gate.Classify(normalize.NormalizeName(c.Canonical), h, b)
	if cfg.TypeOracleOverride != nil {
		if override := cfg.TypeOracleOverride(c.Canonical, refined); override != nil {
			refined = *override
		}
	}
	m.Entity.Type = refined
}

func sentenceFor(doc model.ParsedDocument, idx int) model.ParsedSentence {
	if idx < 0 || idx >= len(doc.Sentences) {
		return model.ParsedSentence{}
	}
	return doc.Sentences[idx]
}
