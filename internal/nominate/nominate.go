// Package nominate implements the candidate-span collectors of spec.md
// §4.2. Each source is a standalone function rather than a class hierarchy
// (the "{Nominate, Source} capability, no inheritance" design note): a
// Nominator is just a function value, registered under a tracing name, that
// sets the model.Source of each candidate it emits; Registry runs all of
// them and concatenates their output.
package nominate

import (
	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// Nominator collects candidate spans from one sentence of a parsed
// document. Implementations must not mutate sent or doc.
type Nominator func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate

// namedNominator pairs a Nominator with a label used only for tracing; the
// candidate's own Source/Strategy fields are set by the Nominator itself.
type namedNominator struct {
	name string
	fn   Nominator
}

// Registry runs every registered nominator over every sentence of doc and
// returns the concatenation of their candidates, in nominator-registration
// order within each sentence, then sentence order. Determinism here is
// what lets stage 5's stable sort (spec.md §5) produce byte-identical
// output across runs.
type Registry struct {
	nominators []namedNominator
}

// NewRegistry returns a Registry pre-loaded with every nomination source
// named in spec.md §4.2.
func NewRegistry(b *lexicon.Bundle) *Registry {
	r := &Registry{}
	r.Register("ner", NERNominator(b))
	r.Register("dependency", DependencyNominator(b))
	r.Register("gazetteer", GazetteerNominator(b))
	r.Register("pattern", PatternNominator(b))
	r.Register("whitelist", WhitelistNominator(b))
	r.Register("handle", SocialHandleNominator())
	r.Register("yearwords", YearWordsNominator())
	r.Register("fallback", FallbackNominator(b))
	return r
}

// Register adds a nominator under name. Exported so callers (and tests)
// can assemble a custom registry with a subset of sources.
func (r *Registry) Register(name string, fn Nominator) {
	r.nominators = append(r.nominators, namedNominator{name: name, fn: fn})
}

// Run executes every registered nominator over doc and returns all
// candidates produced, followed by a post-NER conjunctive pass (spec.md
// §4.2 "Conjunctive nominator", which needs the full NER-derived candidate
// set of its own sentence before it can run).
func (r *Registry) Run(doc model.ParsedDocument, docText string, stats *model.ExtractionStats) []model.Candidate {
	var all []model.Candidate
	bySentence := make([][]model.Candidate, len(doc.Sentences))
	for i, sent := range doc.Sentences {
		var sentCands []model.Candidate
		for _, n := range r.nominators {
			cs := n.fn(doc, i, sent, docText)
			for _, c := range cs {
				if stats != nil {
					stats.Nominated(c.Source)
				}
			}
			sentCands = append(sentCands, cs...)
		}
		bySentence[i] = sentCands
		all = append(all, sentCands...)
	}
	for i, sent := range doc.Sentences {
		conj := ConjunctiveNominator(bySentence[i])(doc, i, sent, docText)
		for _, c := range conj {
			if stats != nil {
				stats.Nominated(c.Source)
			}
		}
		all = append(all, conj...)
	}
	return all
}
