// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chatbotai/internal/http/handlers"
	"chatbotai/internal/http/middleware"
	"chatbotai/internal/modules/feedback"
	"chatbotai/internal/modules/intent"
	"chatbotai/internal/modules/usage"
)

const (
	serviceName    = "chatbot-ai"
	serviceVersion = "1.0.0"
)

type RouterDeps struct {
	Intent   *intent.Service
	Feedback *feedback.Service
	Catalog  *intent.Store
	Usage    *usage.Service
	APIKey   string
	Log      *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(deps.Log),
		middleware.Recovery(deps.Log),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
			"version":   serviceVersion,
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Chatbot AI Service",
			"version": serviceVersion,
			"status":  "Running",
		})
	})

	intentHandler := handlers.NewIntentHandler(deps.Intent, deps.Usage, deps.Log)
	feedbackHandler := handlers.NewFeedbackHandler(deps.Feedback, deps.Usage, deps.Log)
	adminHandler := handlers.NewAdminHandler(deps.Catalog, deps.Log)

	v1 := r.Group("/v1/chatbot-ai", middleware.Auth(deps.APIKey, deps.Log))
	v1.POST("/intent-entity-detection", intentHandler.Detect)
	v1.POST("/feedback-analysis", feedbackHandler.Analyze)
	v1.POST("/validate-entities", adminHandler.ValidateEntities)
	v1.POST("/reload-intents", adminHandler.ReloadIntents)

	return r
}
