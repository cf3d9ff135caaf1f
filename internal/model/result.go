package model

// Result is the output contract of one extraction call (spec.md §6).
type Result struct {
	Entities []Entity
	Spans    []EntitySpan
	Stats    *ExtractionStats
}
