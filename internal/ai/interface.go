package ai

import (
	"context"
)

// Oracle defines the contract for the external text-completion service.
// This interface allows for swapping different providers (Gemini, OpenAI, etc.)
// and for stubbing the oracle in tests.
type Oracle interface {
	// Complete sends a (system instruction, user prompt) pair to the oracle,
	// which is configured to reply with JSON-only text, and returns the
	// parsed reply. Exactly one of the return values is non-nil.
	//
	// No retries and no backoff: a failed call yields a single Failure.
	// Each call is an independent request/response unit, safe for concurrent use.
	Complete(ctx context.Context, userPrompt, systemInstruction string) (map[string]any, *Failure)
}
