package nominate

import (
	"regexp"
	"strings"

	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/normalize"
)

var socialHandle = regexp.MustCompile(`@[A-Za-z0-9_]{2,30}`)

// SocialHandleNominator matches `@handle` mentions (spec.md §4.2). The
// candidate's Surface is the raw handle text and its Strategy is
// "social-handle"; no display-name conversion happens here (post-processing's
// handle-folding transform converts underscore handles when it looks up a
// matching display-name entity). No NERHint is
// set: a handle alone gives no evidence of person-vs-organisation (scenario
// #6, "@TechCrunch"), so type inference is left to fall through to the
// capitalisation/underdetermined signals and the type oracle in
// internal/pipeline.refineUnderdeterminedType.
func SocialHandleNominator() Nominator {
	return func(doc model.ParsedDocument, sentIdx int, sent model.ParsedSentence, docText string) []model.Candidate {
		if sent.End > len(docText) || sent.Start > sent.End {
			return nil
		}
		text := docText[sent.Start:sent.End]
		var out []model.Candidate
		for _, m := range socialHandle.FindAllStringIndex(text, -1) {
			raw := text[m[0]:m[1]]
			out = append(out, model.Candidate{
				Surface:       raw,
				Start:         sent.Start + m[0],
				End:           sent.Start + m[1],
				Source:        model.SourcePattern,
				SentenceIndex: sentIdx,
				Strategy:      "social-handle",
			})
		}
		return out
	}
}

// DisplayNameForHandle converts an `@tim_cook`-style handle body into
// display form "Tim Cook". internal/postprocess's handle-folding transform
// does the same conversion with its own unexported helper and does not call
// this function.
func DisplayNameForHandle(handle string) string {
	body := strings.TrimPrefix(handle, "@")
	body = strings.ReplaceAll(body, "_", " ")
	return normalize.DisplayTitle(body)
}
