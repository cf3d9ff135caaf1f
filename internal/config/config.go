// Package config reads the process-level environment toggles of spec.md
// §6, grounded on the getEnv(key, default) helper repeated across this
// module's command entrypoints (platform/store-core/cmd/store-server,
// platform/ucl-worker/cmd/worker).
package config

import (
	"os"
	"strconv"
	"strings"
)

// Toggles are boolean environment switches read once at process start.
type Toggles struct {
	PipelineEnabled bool
	Debug           bool
	TraceSpans      bool
	FilterDebug     bool
	EntityDecisions bool
}

// FromEnv reads PIPELINE_ENABLED, DEBUG, TRACE_SPANS, FILTER_DEBUG, and
// ENTITY_DECISIONS from the process environment.
func FromEnv() Toggles {
	return Toggles{
		PipelineEnabled: getBool("PIPELINE_ENABLED", true),
		Debug:           getBool("DEBUG", false),
		TraceSpans:      getBool("TRACE_SPANS", false),
		FilterDebug:     getBool("FILTER_DEBUG", false),
		EntityDecisions: getBool("ENTITY_DECISIONS", false),
	}
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getEnv returns the environment value for key, or def when unset/blank.
func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// StoreKind names which internal/store sink to construct, read from
// REPORT_SINK: "local" (default), "postgres", or "object".
func StoreKind() string {
	return getEnv("REPORT_SINK", "local")
}
