package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/minio/minio-go/v7"

	"github.com/nucleus/entity-extractor/internal/trace"
)

// ObjectSink persists gzip-compressed debug reports to an S3-compatible
// object store, grounded on the blob-storage role that
// platform/store-core/pkg/logstore plays for its append log, adapted here
// to a minio-go client instead of a database.
type ObjectSink struct {
	client *minio.Client
	bucket string
}

// NewObjectSink wraps an already-constructed minio client for the given
// bucket. Bucket creation is the caller's responsibility (a debug-report
// sink should not silently provision infrastructure).
func NewObjectSink(client *minio.Client, bucket string) *ObjectSink {
	return &ObjectSink{client: client, bucket: bucket}
}

// PutReport gzip-compresses report and uploads it to
// "<document_id>/<run_id>.json.gz".
func (s *ObjectSink) PutReport(ctx context.Context, report trace.Report) error {
	b, err := marshalReport(report)
	if err != nil {
		return fmt.Errorf("store: marshal report: %w", err)
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(b); err != nil {
		return fmt.Errorf("store: gzip report: %w", err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("store: close gzip writer: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json.gz", report.DocumentID, report.RunID)
	_, err = s.client.PutObject(ctx, s.bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType:     "application/json",
		ContentEncoding: "gzip",
	})
	if err != nil {
		return fmt.Errorf("store: put object %q: %w", key, err)
	}
	return nil
}
