// Command extractworker runs a Temporal worker exposing document extraction
// as an activity and a batch fan-out workflow, grounded on
// platform/ucl-worker/cmd/worker's client-dial-then-worker-run shape.
package main

import (
	"log"
	"os"
	"strings"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/nucleus/entity-extractor/internal/activities"
	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/store"
	"github.com/nucleus/entity-extractor/internal/workflows"
)

const (
	defaultTaskQueue    = "entity-extraction"
	defaultTemporalAddr = "127.0.0.1:7233"
	defaultNamespace    = "default"
)

func main() {
	temporalAddr := getEnv("TEMPORAL_ADDRESS", defaultTemporalAddr)
	namespace := getEnv("TEMPORAL_NAMESPACE", defaultNamespace)
	taskQueue := getEnv("EXTRACTION_TASK_QUEUE", defaultTaskQueue)
	sinkKind := getEnv("REPORT_SINK", "local")

	bundle, err := lexicon.Load(os.Getenv("LEXICON_DIR"))
	if err != nil {
		log.Fatalf("extractworker: load lexicon: %v", err)
	}

	sink, err := store.NewFromEnv(sinkKind)
	if err != nil {
		log.Fatalf("extractworker: build report sink: %v", err)
	}

	log.Printf("starting extractworker: address=%s namespace=%s queue=%s sink=%s",
		temporalAddr, namespace, taskQueue, sinkKind)

	c, err := client.Dial(client.Options{
		HostPort:  temporalAddr,
		Namespace: namespace,
	})
	if err != nil {
		log.Fatalf("extractworker: create Temporal client: %v", err)
	}
	defer c.Close()

	w := worker.New(c, taskQueue, worker.Options{})

	acts := activities.NewActivities(bundle, sink)
	w.RegisterActivity(acts.ExtractDocument)
	w.RegisterWorkflowWithOptions(workflows.BatchExtractWorkflowFunc, workflow.RegisterOptions{Name: workflows.BatchExtractWorkflow})

	log.Printf("registered ExtractDocument activity and %s workflow", workflows.BatchExtractWorkflow)

	if err := w.Run(worker.InterruptCh()); err != nil {
		log.Fatalf("extractworker: worker failed: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
