// README: Resolution service: single-prompt classify+extract with defensive normalization.
package intent

import (
	"context"

	"go.uber.org/zap"

	"chatbotai/internal/ai"
)

// Service resolves a user message to an intent with extracted entity values
// via a single oracle call.
type Service struct {
	store  *Store
	oracle ai.Oracle
	log    *zap.Logger
}

// NewService creates a Service backed by the given catalog store and oracle.
func NewService(store *Store, oracle ai.Oracle, log *zap.Logger) *Service {
	return &Service{store: store, oracle: oracle, log: log}
}

// Resolve classifies the message and extracts entity values in one oracle
// call, always returning a well-formed resolution with a status field.
//
// activeIntentID is accepted but never consulted: classification always runs
// against the full catalog. The hint is a reserved input kept for callers
// that track conversation state themselves.
func (s *Service) Resolve(ctx context.Context, message, activeIntentID string) map[string]any {
	if activeIntentID != "" {
		s.log.Info("active intent hint provided but ignored, classifying from full catalog",
			zap.String("active_intent_id", activeIntentID))
	}

	catalogText := s.store.FormatForPrompt(ctx)
	template := s.store.ResponseTemplate()
	prompt := BuildClassificationPrompt(catalogText, message, template)

	reply, failure := s.oracle.Complete(ctx, prompt, systemInstruction)
	if failure != nil {
		s.log.Error("oracle call failed", zap.Int("kind", int(failure.Kind)), zap.String("message", failure.Message))
		return ErrorResolution(failure.Message)
	}

	return normalizeResolution(reply)
}

// normalizeResolution turns an arbitrary oracle reply into the caller-facing
// contract. The oracle is trusted to have followed the schema it was shown;
// the only repair performed here is injecting the two reserved bookkeeping
// fields into the first result entry. Any structural surprise falls back to
// the error shape instead of escaping.
func normalizeResolution(reply map[string]any) map[string]any {
	if msg, ok := reply["error"].(string); ok {
		return ErrorResolution(msg)
	}

	result, ok := reply["result"].([]any)
	if !ok || len(result) == 0 {
		return ErrorResolution("oracle reply has no result list")
	}
	first, ok := result[0].(map[string]any)
	if !ok {
		return ErrorResolution("oracle reply result entry is not an object")
	}

	// Reserved fields: always present, always null in this version.
	first["intent_changed"] = nil
	first["previous_intentId"] = nil
	return reply
}
