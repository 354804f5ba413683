package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles oracle_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert writes one usage record.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO oracle_usage (endpoint, status, duration_ms, created_at)
		VALUES ($1, $2, $3, $4)
	`, rec.Endpoint, rec.Status, rec.DurationMS, rec.CreatedAt)
	return err
}

// CountSince returns the number of records created at or after the given time.
func (s *Store) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM oracle_usage WHERE created_at >= $1
	`, since).Scan(&n)
	return n, err
}
