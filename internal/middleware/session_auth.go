package middleware

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware creates a Gin middleware handler that resolves the
// session cookie to a user. This is the single authorization gate for every
// protected route: no handler re-implements the check. Requests without a
// valid session are rejected before any resource persistence is touched.
func SessionAuthMiddleware(cookieName string, sessions portssvc.SessionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Session resolution failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		// Store the user ID in the context (using standard context)
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)

		// Add user ID to the logger
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)
		c.Next()
	}
}
