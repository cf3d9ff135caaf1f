package activities

import (
	"context"
	"testing"

	"go.temporal.io/sdk/testsuite"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/trace"
)

type memSink struct {
	reports []trace.Report
}

func (m *memSink) PutReport(ctx context.Context, report trace.Report) error {
	m.reports = append(m.reports, report)
	return nil
}

func tok(i int, text, pos, dep string, head int, ent string, start int) model.Token {
	return model.Token{I: i, Text: text, Lemma: text, POS: pos, Dep: dep, Head: head, Ent: ent, Start: start, End: start + len(text)}
}

func TestExtractDocumentPersistsReport(t *testing.T) {
	b, err := lexicon.Load("../../lexicons")
	if err != nil {
		t.Fatalf("lexicon.Load: %v", err)
	}
	sink := &memSink{}
	acts := NewActivities(b, sink)

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestActivityEnvironment()
	env.RegisterActivity(acts.ExtractDocument)

	req := ExtractRequest{
		DocumentID: "doc-1",
		Text:       "Harry Potter walked into the hall. Harry Potter smiled at the crowd.",
		Parsed: model.ParsedDocument{
			Sentences: []model.ParsedSentence{
				{Start: 0, End: 35, Tokens: []model.Token{
					tok(0, "Harry", "PROPN", "compound", 1, "PERSON", 0),
					tok(1, "Potter", "PROPN", "nsubj", 2, "PERSON", 6),
					tok(2, "walked", "VERB", "ROOT", 2, "", 13),
				}},
				{Start: 35, End: 68, Tokens: []model.Token{
					tok(0, "Harry", "PROPN", "compound", 1, "PERSON", 35),
					tok(1, "Potter", "PROPN", "nsubj", 2, "PERSON", 41),
					tok(2, "smiled", "VERB", "ROOT", 2, "", 48),
				}},
			},
		},
		ConfigName: "default",
	}

	val, err := env.ExecuteActivity(acts.ExtractDocument, req)
	if err != nil {
		t.Fatalf("ExecuteActivity: %v", err)
	}
	var result ExtractResult
	if err := val.Get(&result); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if result.EntityCount == 0 {
		t.Errorf("expected at least one entity, got 0")
	}
	if len(sink.reports) != 1 {
		t.Fatalf("expected one persisted report, got %d", len(sink.reports))
	}
	if sink.reports[0].DocumentID != "doc-1" {
		t.Errorf("report document id = %q, want doc-1", sink.reports[0].DocumentID)
	}
}

func TestNamedConfigRejectsUnknown(t *testing.T) {
	if _, err := namedConfig("bogus"); err == nil {
		t.Error("expected an error for an unknown config name")
	}
}
