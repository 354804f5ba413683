// README: Intent/entity detection handler.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotai/internal/modules/intent"
	"chatbotai/internal/modules/usage"
)

type IntentHandler struct {
	intent *intent.Service
	usage  *usage.Service
	log    *zap.Logger
}

func NewIntentHandler(svc *intent.Service, usageSvc *usage.Service, log *zap.Logger) *IntentHandler {
	return &IntentHandler{intent: svc, usage: usageSvc, log: log}
}

type conversationMetadata struct {
	Channel   string `json:"channel"`
	Language  string `json:"language"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

type processMessageReq struct {
	Message        string                `json:"message"`
	ActiveIntentID string                `json:"active_intent_id"`
	Metadata       *conversationMetadata `json:"conversation_metadata"`
}

// Detect handles POST /v1/chatbot-ai/intent-entity-detection.
func (h *IntentHandler) Detect(c *gin.Context) {
	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}

	// Metadata is accepted but currently only logged; reserved for routing.
	if req.Metadata != nil {
		h.log.Info("conversation metadata",
			zap.String("channel", req.Metadata.Channel),
			zap.String("language", req.Metadata.Language),
			zap.String("session_id", req.Metadata.SessionID),
		)
	}

	started := time.Now()
	result := h.intent.Resolve(c.Request.Context(), message, strings.TrimSpace(req.ActiveIntentID))

	status, _ := result["status"].(string)
	h.usage.Record(c.Request.Context(), c.FullPath(), status, started)

	if status == intent.StatusError {
		msg, _ := result["error"].(string)
		if msg == "" {
			msg = "processing failed"
		}
		writeError(c, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(c, http.StatusOK, result)
}
