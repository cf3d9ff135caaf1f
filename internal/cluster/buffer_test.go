package cluster

import (
	"testing"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

func mention(surface string, start int, ner string) model.DurableMention {
	c := model.Candidate{Surface: surface, Start: start, End: start + len(surface), NERHint: ner}
	return model.NewDurableMention(c, model.GateResult{Verdict: model.VerdictDurable})
}

func testBundle(t *testing.T) *lexicon.Bundle {
	t.Helper()
	b, err := lexicon.Load("../../lexicons")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestClusterMergesTitleStrippedVariants(t *testing.T) {
	mentions := []model.DurableMention{
		mention("Dr. Wilson", 0, "PERSON"),
		mention("Wilson", 20, "PERSON"),
		mention("Wilson", 40, "PERSON"),
	}
	clusters := Cluster(mentions, testBundle(t))
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1", len(clusters))
	}
	if clusters[0].MentionCount() != 3 {
		t.Errorf("got %d mentions, want 3", clusters[0].MentionCount())
	}
}

func TestClusterKeepsIncompatibleNERSeparate(t *testing.T) {
	mentions := []model.DurableMention{
		mention("Dr. Smith", 0, "PERSON"),
		mention("Professor Smith", 20, "ORG"),
	}
	clusters := Cluster(mentions, testBundle(t))
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2 (PERSON and ORG should not merge)", len(clusters))
	}
}

func TestClusterMergesGPELocSynonyms(t *testing.T) {
	mentions := []model.DurableMention{
		mention("Mr. Smith", 0, "GPE"),
		mention("Dr. Smith", 20, "LOC"),
	}
	clusters := Cluster(mentions, testBundle(t))
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1 (GPE/LOC are synonymous)", len(clusters))
	}
}

func TestClusterMergesLastNameWithSharedFirstName(t *testing.T) {
	mentions := []model.DurableMention{
		mention("John Smith", 0, "PERSON"),
		mention("John A. Smith", 40, "PERSON"),
	}
	clusters := Cluster(mentions, testBundle(t))
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1 (shared first name is the supporting evidence)", len(clusters))
	}
}

func TestClusterDoesNotMergeLastNameWithoutSharedFirstName(t *testing.T) {
	mentions := []model.DurableMention{
		mention("John Smith", 0, "PERSON"),
		mention("Jane Smith", 40, "PERSON"),
	}
	clusters := Cluster(mentions, testBundle(t))
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2 (bare surname match alone is not supporting evidence)", len(clusters))
	}
}
