// README: Feedback analysis handler.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotai/internal/modules/feedback"
	"chatbotai/internal/modules/usage"
)

type FeedbackHandler struct {
	feedback *feedback.Service
	usage    *usage.Service
	log      *zap.Logger
}

func NewFeedbackHandler(svc *feedback.Service, usageSvc *usage.Service, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedback: svc, usage: usageSvc, log: log}
}

type feedbackAnalysisReq struct {
	FeedbackMessage    string `json:"feedback_message"`
	TargetLanguageCode string `json:"target_language_code"`
}

// Analyze handles POST /v1/chatbot-ai/feedback-analysis.
func (h *FeedbackHandler) Analyze(c *gin.Context) {
	var req feedbackAnalysisReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	message := strings.TrimSpace(req.FeedbackMessage)
	if message == "" {
		writeError(c, http.StatusBadRequest, "feedback message is required")
		return
	}

	targetLanguage := req.TargetLanguageCode
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	started := time.Now()
	result := h.feedback.Analyze(c.Request.Context(), message, targetLanguage)
	h.usage.Record(c.Request.Context(), c.FullPath(), result.Status, started)

	if result.Status == feedback.StatusError {
		msg := result.Error
		if msg == "" {
			msg = "sentiment analysis failed"
		}
		writeError(c, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(c, http.StatusOK, result)
}
