package store

import (
	"fmt"
	"os"
)

// NewFromEnv builds the ReportSink named by kind ("local" or "postgres"),
// reading the backend-specific connection details from the process
// environment. Any other kind, "object" included, returns an error: an
// ObjectSink is built only by calling NewObjectSink with a configured
// minio.Client, and no command in this module does so.
func NewFromEnv(kind string) (ReportSink, error) {
	switch kind {
	case "", "local":
		dir := os.Getenv("REPORT_DIR")
		if dir == "" {
			dir = "reports"
		}
		return NewLocalSink(dir)
	case "postgres":
		dsn := os.Getenv("REPORT_DATABASE_URL")
		if dsn == "" {
			dsn = os.Getenv("DATABASE_URL")
		}
		return NewPostgresSink(dsn)
	default:
		return nil, fmt.Errorf("store: unknown REPORT_SINK %q", kind)
	}
}
