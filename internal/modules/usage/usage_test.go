// README: Usage module tests (DB-backed, skipped without a test DSN).
package usage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// TestRecordInserts verifies that Record writes one row per call.
func TestRecordInserts(t *testing.T) {
	svc, store := setupTestService(t)
	ctx := context.Background()

	start := time.Now().UTC().Add(-time.Second)
	svc.Record(ctx, "/v1/chatbot-ai/intent-entity-detection", "Success", time.Now())
	svc.Record(ctx, "/v1/chatbot-ai/feedback-analysis", "Error", time.Now())

	n, err := store.CountSince(ctx, start)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 usage rows, got %d", n)
	}
}

// TestNilServiceIsNoop verifies that the disabled-accounting path is safe.
func TestNilServiceIsNoop(t *testing.T) {
	var svc *Service
	svc.Record(context.Background(), "/health", "Success", time.Now())
}

// setupTestService creates a real postgres-backed Service for integration
// tests. It skips the test when CHATBOT_TEST_DSN is not set.
func setupTestService(t *testing.T) (*Service, *Store) {
	t.Helper()

	dsn := os.Getenv("CHATBOT_TEST_DSN")
	if dsn == "" {
		t.Skip("CHATBOT_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS oracle_usage (
			id BIGSERIAL PRIMARY KEY,
			endpoint TEXT NOT NULL,
			status TEXT NOT NULL,
			duration_ms BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE oracle_usage"); err != nil {
		t.Fatalf("truncate oracle_usage: %v", err)
	}

	store := NewStore(db)
	return NewService(store, zap.NewNop()), store
}
