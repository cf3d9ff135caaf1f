// Command extractctl runs one document through the extraction pipeline and
// persists its debug report, grounded on the single-document CLI shape of
// platform/ucl-worker/cmd/worker (flag-driven, no server loop).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/nucleus/entity-extractor/internal/config"
	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
	"github.com/nucleus/entity-extractor/internal/overrides"
	"github.com/nucleus/entity-extractor/internal/pipeline"
	"github.com/nucleus/entity-extractor/internal/store"
	"github.com/nucleus/entity-extractor/internal/trace"
)

// docInput is the on-disk shape extractctl reads: the cleaned document text
// plus the external analyser's parse of it (tokens, POS, deps, NER). This
// module does no tokenisation or dependency parsing of its own; an upstream
// analyser is expected to have produced this file.
//
// TaggedText is an alternative to Text for documents an author has marked
// up with manual-override tags ("[[Surface::TYPE]]", spec.md §8). When set,
// extractctl strips the tags with internal/overrides.ParseInlineTags before
// extraction and folds the pinned spans into the run's whitelist; Parsed
// must then be the external analyser's parse of the STRIPPED text, not the
// tagged original.
type docInput struct {
	DocumentID string               `json:"document_id"`
	Text       string               `json:"text"`
	TaggedText string               `json:"tagged_text"`
	Parsed     model.ParsedDocument `json:"parsed"`
}

func main() {
	var (
		inPath    = flag.String("in", "", "path to a docInput JSON file (required)")
		cfgName   = flag.String("config", "default", "promotion config: strict, default, or permissive")
		lexDir    = flag.String("lexicon-dir", "", "override LEXICON_DIR")
		printOnly = flag.Bool("print", false, "print the report to stdout instead of writing to the sink")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("extractctl: -in is required")
	}
	if *lexDir != "" {
		os.Setenv("LEXICON_DIR", *lexDir)
	}

	toggles := config.FromEnv()
	if !toggles.PipelineEnabled {
		log.Fatal("extractctl: PIPELINE_ENABLED=false, refusing to run")
	}

	in, err := readInput(*inPath)
	if err != nil {
		log.Fatalf("extractctl: %v", err)
	}

	b, err := lexicon.Load(os.Getenv("LEXICON_DIR"))
	if err != nil {
		log.Fatalf("extractctl: load lexicon: %v", err)
	}

	cfg, err := namedConfig(*cfgName)
	if err != nil {
		log.Fatalf("extractctl: %v", err)
	}
	cfg.DocID = in.DocumentID
	cfg.Debug = toggles.Debug

	text := in.Text
	if in.TaggedText != "" {
		var tagOverrides []overrides.ManualOverride
		text, tagOverrides = overrides.ParseInlineTags(in.TaggedText)
		for _, o := range tagOverrides {
			cfg.Whitelist[strings.ToLower(o.Surface)] = o.Type
		}
	}

	runID := xid.New().String()
	now := time.Now()

	result := pipeline.Extract(pipeline.Input{Text: text, Parsed: in.Parsed, Config: cfg}, b, now)

	originalTypes := map[string]model.EntityType{}
	for _, e := range result.Entities {
		originalTypes[e.ID] = e.Type
	}
	report := trace.BuildReport(runID, in.DocumentID, now, result.Entities, result.Spans, result.Stats, originalTypes)

	if *printOnly {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("extractctl: encode report: %v", err)
		}
		return
	}

	sink, err := store.NewFromEnv(config.StoreKind())
	if err != nil {
		log.Fatalf("extractctl: build report sink: %v", err)
	}
	if err := sink.PutReport(context.Background(), report); err != nil {
		log.Fatalf("extractctl: put report: %v", err)
	}
	fmt.Printf("extractctl: run %s persisted %d entities, %d spans for document %q\n",
		runID, len(result.Entities), len(result.Spans), in.DocumentID)
}

func readInput(path string) (docInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return docInput{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	var in docInput
	if err := json.NewDecoder(f).Decode(&in); err != nil {
		return docInput{}, fmt.Errorf("decode %q: %w", path, err)
	}
	return in, nil
}

func namedConfig(name string) (model.Config, error) {
	switch name {
	case "", "default":
		return model.DefaultConfig(), nil
	case "strict":
		return model.StrictConfig(), nil
	case "permissive":
		return model.PermissiveConfig(), nil
	default:
		return model.Config{}, fmt.Errorf("unknown -config %q (want strict, default, or permissive)", name)
	}
}
