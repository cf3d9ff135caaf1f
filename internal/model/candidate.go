package model

// Candidate is a nominated span before type assignment. Invariants (spec.md
// §3): Start < End, Start >= 0; the caller is responsible for End <= len(text).
type Candidate struct {
	Surface       string
	Start         int
	End           int
	Tokens        []Token
	Source        Source
	SentenceIndex int
	NERHint       string // optional; empty when the nominator has no NER opinion

	// Strategy names the specific nominator strategy (e.g. "titled-name",
	// "acronym-pair", "social-handle") within Source, for stats/tracing.
	Strategy string
}

// Valid reports whether the candidate satisfies the structural invariants of
// spec.md §3. It does not check the span against document text; callers that
// have the document text should also call ValidateSpan.
func (c Candidate) Valid() bool {
	return c.Start >= 0 && c.Start < c.End
}

// ValidateSpan checks the span-validation-failure condition of §7: that
// text[Start:End], after whitespace normalisation, still corresponds to
// Surface. norm is expected to be the normalize.Collapse function, injected
// by the caller to avoid an import cycle.
func (c Candidate) ValidateSpan(text string, norm func(string) string) bool {
	if c.End > len(text) || c.Start < 0 || c.Start >= c.End {
		return false
	}
	return norm(text[c.Start:c.End]) == norm(c.Surface)
}

// GateVerdict is the meaning gate's decision for a candidate (spec.md §4.3).
type GateVerdict string

const (
	VerdictNonEntity   GateVerdict = "NON_ENTITY"
	VerdictContextOnly GateVerdict = "CONTEXT_ONLY"
	VerdictDurable     GateVerdict = "DURABLE_CANDIDATE"
)

// GateResult carries the verdict plus the reason, for stats/tracing.
type GateResult struct {
	Verdict GateVerdict
	Reason  string // RejectReason when Verdict != VerdictDurable
}
