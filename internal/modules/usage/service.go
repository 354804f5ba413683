package usage

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Service records oracle-call usage, best effort. A nil Service is valid and
// records nothing, which is how the server runs without a database configured.
type Service struct {
	store *Store
	log   *zap.Logger
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Record persists one usage observation. Insert failures are logged and
// swallowed: accounting must never affect the request path.
func (s *Service) Record(ctx context.Context, endpoint, status string, started time.Time) {
	if s == nil {
		return
	}
	rec := Record{
		Endpoint:   endpoint,
		Status:     status,
		DurationMS: time.Since(started).Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		s.log.Warn("failed to record oracle usage", zap.String("endpoint", endpoint), zap.Error(err))
	}
}
