// README: API-key auth middleware with constant-time comparison.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth verifies the static API key carried in the Authorization header.
// Expected format: Authorization: <api_key>
func Auth(apiKey string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			log.Error("API key not configured in environment")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication not configured"})
			return
		}

		provided := strings.TrimSpace(c.GetHeader("Authorization"))
		if provided == "" {
			log.Warn("missing Authorization header", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			log.Warn("invalid API key", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no valid API key provided"})
			return
		}

		c.Next()
	}
}
