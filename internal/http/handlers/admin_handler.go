// README: Catalog reload and entity validation handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotai/internal/modules/intent"
)

type AdminHandler struct {
	catalog *intent.Store
	log     *zap.Logger
}

func NewAdminHandler(catalog *intent.Store, log *zap.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, log: log}
}

// ReloadIntents handles POST /v1/chatbot-ai/reload-intents: invalidates the
// memoized catalog and reports the freshly loaded intent count.
func (h *AdminHandler) ReloadIntents(c *gin.Context) {
	h.catalog.Invalidate()
	catalog := h.catalog.Load(c.Request.Context())

	h.log.Info("intents catalog reloaded", zap.Int("intents", catalog.Len()))
	writeJSON(c, http.StatusOK, gin.H{
		"status":        "Success",
		"message":       "intents data reloaded",
		"intents_count": catalog.Len(),
	})
}

// ValidateEntities handles POST /v1/chatbot-ai/validate-entities: normalizes
// a list of entity objects into the canonical slot shape, skipping non-object
// entries.
func (h *AdminHandler) ValidateEntities(c *gin.Context) {
	var entities []any
	if err := c.ShouldBindJSON(&entities); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	validated := make([]map[string]any, 0, len(entities))
	for _, raw := range entities {
		e, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		validated = append(validated, map[string]any{
			"id":         stringField(e, "id", ""),
			"label":      stringField(e, "label", ""),
			"type":       stringField(e, "type", intent.SlotTypeText),
			"options":    listField(e, "options"),
			"user_input": stringField(e, "user_input", ""),
		})
	}

	writeJSON(c, http.StatusOK, gin.H{
		"status":             "Success",
		"validated_entities": validated,
		"total_entities":     len(validated),
	})
}

func stringField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func listField(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return []any{}
}
