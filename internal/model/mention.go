package model

// DurableMention is a candidate that passed the meaning gate (spec.md §3).
type DurableMention struct {
	Candidate
	Gate             GateResult
	DocumentPosition int // == Candidate.Start, named separately per spec.md
}

// NewDurableMention builds a DurableMention from a gated candidate.
func NewDurableMention(c Candidate, gate GateResult) DurableMention {
	return DurableMention{
		Candidate:        c,
		Gate:             gate,
		DocumentPosition: c.Start,
	}
}
