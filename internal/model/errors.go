package model

import "errors"

// ErrParserUnavailable names the one fatal failure kind of spec.md §7: the
// upstream analyser failed before extraction could begin. pipeline.Extract
// takes an already-parsed document and returns no error, so nothing in this
// module returns this value. Every other failure mode is recoverable and is
// folded into ExtractionStats instead of being surfaced as a Go error.
var ErrParserUnavailable = errors.New("entity-extractor: parser unavailable")

// RejectReason enumerates the specific reasons a candidate was dropped,
// matching the malformed_candidate and span_validation_failure kinds of
// spec.md §7. Stats tallies are keyed by these constants so that
// sum(stats.RejectReasons) == non-entity verdicts + validation drops, an
// invariant spec.md §7/§8 requires implementations to uphold.
type RejectReason string

const (
	ReasonEmpty                  RejectReason = "empty"
	ReasonLowercaseFragment      RejectReason = "lowercase-fragment"
	ReasonImperativeSingle       RejectReason = "imperative-single"
	ReasonChapterHeading         RejectReason = "chapter-heading"
	ReasonRepeatedLetter         RejectReason = "repeated-letter-interjection"
	ReasonCommonInterjection     RejectReason = "common-interjection"
	ReasonPrepositionFragment    RejectReason = "preposition-led-fragment"
	ReasonDeterminerFragment     RejectReason = "determiner-led-fragment"
	ReasonRoadSign               RejectReason = "dead-end-road-sign"
	ReasonLowercaseLeading       RejectReason = "lowercase-leading-fragment"
	ReasonVerbObjectFragment     RejectReason = "verb-object-fragment"
	ReasonLowercasePredecessor   RejectReason = "lowercase-predecessor"
	ReasonTitleThenCommonNoun    RejectReason = "title-case-then-common-noun"
	ReasonCollectiblePattern     RejectReason = "collectible-pattern"
	ReasonLowercaseRawSpan       RejectReason = "lowercase-raw-span"
	ReasonVocativeComma          RejectReason = "vocative-comma"
	ReasonThemeSlogan            RejectReason = "theme-slogan"
	ReasonAdjectivalDemonym      RejectReason = "adjectival-demonym"
	ReasonSpanValidationFailure  RejectReason = "span-validation-failure"
	ReasonStopwordOnly           RejectReason = "stopword-only"
	ReasonSingleTokenAfterDet    RejectReason = "single-token-after-determiner"
)

// TypeInferenceUnderdetermined is recorded (never returned as an error) when
// none of the type-inference signals of spec.md §4.6 fire; the caller
// defaults to PERSON with confidence 0.5.
const TypeInferenceUnderdetermined = "type_inference_underdetermined"
