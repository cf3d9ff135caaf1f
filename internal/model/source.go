package model

// Source tags which nominator produced a candidate. The vocabulary is
// closed to the six values spec.md's data model names; finer-grained
// nomination strategies (titled names, acronym pairs, social handles,
// fantasy patterns, coordination splits, ...) all report one of these as
// their Source and carry their specific strategy name separately in stats.
type Source string

const (
	SourceNER       Source = "NER"
	SourceDep       Source = "DEP"
	SourceGaz       Source = "GAZ"
	SourcePattern   Source = "PATTERN"
	SourceWhitelist Source = "WHITELIST"
	SourceFallback  Source = "FALLBACK"
)

// sourcePriority orders sources for span-conflict resolution (§4.7):
// DEP > WHITELIST > NER > PATTERN > FALLBACK. GAZ candidates are
// regex/gazetteer-matched like PATTERN and share its rank.
var sourcePriority = map[Source]int{
	SourceDep:       5,
	SourceWhitelist: 4,
	SourceNER:       3,
	SourceGaz:       2,
	SourcePattern:   2,
	SourceFallback:  1,
}

// Priority returns this source's rank for span-conflict resolution; higher wins.
func (s Source) Priority() int {
	return sourcePriority[s]
}
