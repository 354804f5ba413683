package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiOracle implements Oracle using Google's Gemini models.
type GeminiOracle struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *zap.Logger
}

// NewGeminiOracle initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiOracle(ctx context.Context, apiKey, modelName string, temperature float64, log *zap.Logger) (*GeminiOracle, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(float32(temperature))

	return &GeminiOracle{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

// Close cleans up the Gemini client resources.
func (o *GeminiOracle) Close() {
	o.client.Close()
}

// Complete sends the prompt pair to Gemini and parses the JSON reply.
// The system instruction is prepended to the user prompt rather than set on
// the shared model value, so concurrent calls never share mutable state.
func (o *GeminiOracle) Complete(ctx context.Context, userPrompt, systemInstruction string) (map[string]any, *Failure) {
	fullPrompt := userPrompt
	if systemInstruction != "" {
		fullPrompt = systemInstruction + "\n\n" + userPrompt
	}

	resp, err := o.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, &Failure{Kind: FailureTransport, Message: err.Error()}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &Failure{Kind: FailureTransport, Message: "no response candidates from Gemini"}
	}

	// Extract text from the response parts.
	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var reply map[string]any
	if err := json.Unmarshal([]byte(cleanJSON), &reply); err != nil {
		o.log.Error("oracle reply is not valid JSON",
			zap.Error(err),
			zap.String("raw", cleanJSON))
		return nil, &Failure{
			Kind:    FailureFormat,
			Message: "invalid JSON response from oracle",
			Raw:     cleanJSON,
		}
	}

	return reply, nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
