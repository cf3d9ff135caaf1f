package model

// ExtractionStats is the extraction-scoped counters of spec.md §6/§9
// ("global mutable state (stats collector)" design note): a single instance
// is threaded by reference through one Extract call and never shared across
// calls.
type ExtractionStats struct {
	NominationsBySource map[Source]int
	GateResults         map[GateVerdict]int
	RejectReasons       map[RejectReason]int
	ClustersSingleton   int
	ClustersMulti       int
	PromotionsByReason  map[string]int
	DeferralsByReason   map[string]int
	EntitiesByType      map[EntityType]int
	AliasesAttached     int
	Underdetermined     int
}

// NewExtractionStats returns a zero-valued, ready-to-use stats collector.
func NewExtractionStats() *ExtractionStats {
	return &ExtractionStats{
		NominationsBySource: map[Source]int{},
		GateResults:         map[GateVerdict]int{},
		RejectReasons:       map[RejectReason]int{},
		PromotionsByReason:  map[string]int{},
		DeferralsByReason:   map[string]int{},
		EntitiesByType:      map[EntityType]int{},
	}
}

// Nominated records one candidate produced by a nominator.
func (s *ExtractionStats) Nominated(src Source) {
	s.NominationsBySource[src]++
}

// Gated records a meaning-gate verdict.
func (s *ExtractionStats) Gated(v GateVerdict) {
	s.GateResults[v]++
}

// Rejected records a dropped candidate with its specific reason.
func (s *ExtractionStats) Rejected(reason RejectReason) {
	s.RejectReasons[reason]++
}

// ClusterFormed records one cluster emerging from the buffer/cluster stage.
func (s *ExtractionStats) ClusterFormed(mentionCount int) {
	if mentionCount <= 1 {
		s.ClustersSingleton++
	} else {
		s.ClustersMulti++
	}
}

// Promoted records a promotion and its reason.
func (s *ExtractionStats) Promoted(reason string) {
	s.PromotionsByReason[reason]++
}

// Deferred records a deferral and its reason.
func (s *ExtractionStats) Deferred(reason string) {
	s.DeferralsByReason[reason]++
}

// MintedEntity records a newly minted entity's type.
func (s *ExtractionStats) MintedEntity(t EntityType) {
	s.EntitiesByType[t]++
}

// AliasAttached records one alias being attached to an entity.
func (s *ExtractionStats) AliasAttached() {
	s.AliasesAttached++
}

// TypeUnderdetermined records a type_inference_underdetermined fallback.
func (s *ExtractionStats) TypeUnderdetermined() {
	s.Underdetermined++
}

// TotalNonEntityAndDrops returns GateResults[NON_ENTITY] + the count of
// span_validation_failure drops, the quantity spec.md §7 requires
// sum(RejectReasons) to equal.
func (s *ExtractionStats) TotalNonEntityAndDrops() int {
	return s.GateResults[VerdictNonEntity] + s.RejectReasons[ReasonSpanValidationFailure]
}
