package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/nucleus/entity-extractor/internal/trace"
)

// PostgresSink persists debug reports to a single audit table, grounded on
// platform/store-core/pkg/entity/postgres_registry.go's ensureSchema/
// sql.DB pattern.
type PostgresSink struct {
	db *sql.DB
}

// NewPostgresSink opens dsn and ensures the extraction_reports table
// exists.
func NewPostgresSink(dsn string) (*PostgresSink, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}
	sink := &PostgresSink{db: db}
	if err := sink.ensureSchema(); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return sink, nil
}

func (s *PostgresSink) ensureSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS extraction_reports (
		run_id TEXT PRIMARY KEY,
		document_id TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		report JSONB NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// PutReport upserts report into extraction_reports, keyed by run_id.
func (s *PostgresSink) PutReport(ctx context.Context, report trace.Report) error {
	b, err := marshalReport(report)
	if err != nil {
		return fmt.Errorf("store: marshal report: %w", err)
	}
	const stmt = `
	INSERT INTO extraction_reports (run_id, document_id, created_at, report)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (run_id) DO UPDATE SET report = EXCLUDED.report`
	_, err = s.db.ExecContext(ctx, stmt, report.RunID, report.DocumentID, report.CreatedAt, b)
	if err != nil {
		return fmt.Errorf("store: insert report: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *PostgresSink) Close() error {
	return s.db.Close()
}
