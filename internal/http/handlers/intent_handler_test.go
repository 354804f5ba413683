// README: Endpoint tests for auth, validation, and error mapping.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotai/internal/ai"
	httptransport "chatbotai/internal/http"
	"chatbotai/internal/modules/feedback"
	"chatbotai/internal/modules/intent"
)

const testAPIKey = "test-key"

// stubOracle is a test double for ai.Oracle that counts calls.
type stubOracle struct {
	reply   map[string]any
	failure *ai.Failure
	calls   int
}

func (s *stubOracle) Complete(_ context.Context, _, _ string) (map[string]any, *ai.Failure) {
	s.calls++
	return s.reply, s.failure
}

// buildTestRouter wires the full router with a stub oracle and a temp catalog.
func buildTestRouter(t *testing.T, oracle ai.Oracle, apiKey string) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	intentsPath := filepath.Join(dir, "intents.json")
	catalog := `{"intents": [{"id": "cancel_order", "entity": [{"id": "order_id", "label": "Order ID", "type": "TEXT_INPUT", "options": []}]}]}`
	if err := os.WriteFile(intentsPath, []byte(catalog), 0o644); err != nil {
		t.Fatalf("write intents: %v", err)
	}

	log := zap.NewNop()
	store := intent.NewStore(intentsPath, filepath.Join(dir, "tmpl.json"), nil, log)
	return httptransport.NewRouter(httptransport.RouterDeps{
		Intent:   intent.NewService(store, oracle, log),
		Feedback: feedback.NewService(oracle, log),
		Catalog:  store,
		Usage:    nil,
		APIKey:   apiKey,
		Log:      log,
	})
}

func doRequest(r http.Handler, method, path string, body any, authHeader string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDetectAuth(t *testing.T) {
	oracle := &stubOracle{reply: map[string]any{"status": "Success", "result": []any{map[string]any{"intent": "greet"}}}}
	body := map[string]any{"message": "hello"}

	cases := []struct {
		name       string
		apiKey     string
		authHeader string
		wantStatus int
	}{
		{"unconfigured", "", testAPIKey, http.StatusInternalServerError},
		{"missing header", testAPIKey, "", http.StatusUnauthorized},
		{"wrong key", testAPIKey, "nope", http.StatusForbidden},
		{"valid key", testAPIKey, testAPIKey, http.StatusOK},
	}
	for _, c := range cases {
		r := buildTestRouter(t, oracle, c.apiKey)
		w := doRequest(r, http.MethodPost, "/v1/chatbot-ai/intent-entity-detection", body, c.authHeader)
		if w.Code != c.wantStatus {
			t.Fatalf("%s: status = %d, want %d (body %s)", c.name, w.Code, c.wantStatus, w.Body.String())
		}
	}
}

// TestDetectEmptyMessageRejectedBeforeOracle verifies client-side rejection
// happens before any oracle call is made.
func TestDetectEmptyMessageRejectedBeforeOracle(t *testing.T) {
	oracle := &stubOracle{}
	r := buildTestRouter(t, oracle, testAPIKey)

	for _, message := range []string{"", "   "} {
		w := doRequest(r, http.MethodPost, "/v1/chatbot-ai/intent-entity-detection",
			map[string]any{"message": message}, testAPIKey)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("message %q: status = %d, want 400", message, w.Code)
		}
	}
	if oracle.calls != 0 {
		t.Fatalf("oracle called %d times for empty input", oracle.calls)
	}
}

func TestDetectSuccessPassthrough(t *testing.T) {
	oracle := &stubOracle{reply: map[string]any{
		"status": "Success",
		"result": []any{map[string]any{"intent": "cancel_order", "is_matched": true, "intentId": "cancel_order", "entity": []any{}}},
	}}
	r := buildTestRouter(t, oracle, testAPIKey)

	w := doRequest(r, http.MethodPost, "/v1/chatbot-ai/intent-entity-detection",
		map[string]any{"message": "cancel my order", "active_intent_id": "ignored_hint"}, testAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	first := resp["result"].([]any)[0].(map[string]any)
	if v, present := first["intent_changed"]; !present || v != nil {
		t.Fatalf("intent_changed = %v (present=%v), want null", v, present)
	}
}

func TestDetectOracleErrorMapsTo500(t *testing.T) {
	oracle := &stubOracle{failure: &ai.Failure{Kind: ai.FailureTransport, Message: "quota exceeded"}}
	r := buildTestRouter(t, oracle, testAPIKey)

	w := doRequest(r, http.MethodPost, "/v1/chatbot-ai/intent-entity-detection",
		map[string]any{"message": "hello"}, testAPIKey)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "quota exceeded" {
		t.Fatalf("error = %v, want oracle message", resp["error"])
	}
}

func TestFeedbackEmptyMessageRejected(t *testing.T) {
	oracle := &stubOracle{}
	r := buildTestRouter(t, oracle, testAPIKey)

	w := doRequest(r, http.MethodPost, "/v1/chatbot-ai/feedback-analysis",
		map[string]any{"feedback_message": "  "}, testAPIKey)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if oracle.calls != 0 {
		t.Fatal("oracle called for empty feedback")
	}
}

func TestFeedbackSuccess(t *testing.T) {
	oracle := &stubOracle{reply: map[string]any{
		"sentiment":   "positive",
		"translation": "great service",
		"keywords":    []any{"great", "service"},
	}}
	r := buildTestRouter(t, oracle, testAPIKey)

	w := doRequest(r, http.MethodPost, "/v1/chatbot-ai/feedback-analysis",
		map[string]any{"feedback_message": "great service"}, testAPIKey)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	var resp feedback.Result
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a feedback result: %v", err)
	}
	if resp.Status != feedback.StatusSuccess || resp.Result[0].Sentiment != "positive" {
		t.Fatalf("unexpected result: %+v", resp)
	}
}

func TestHealthNoAuth(t *testing.T) {
	r := buildTestRouter(t, &stubOracle{}, testAPIKey)
	w := doRequest(r, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["status"] != "OK" || resp["service"] != "chatbot-ai" {
		t.Fatalf("unexpected health body: %v", resp)
	}
}
