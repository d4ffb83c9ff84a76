package handlers

import (
	"net/http"

	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/brewnotes/brewnotes_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes. Public routes (health,
// signup, login, logout and the OAuth redirect pair) are registered on the
// engine directly; everything else sits behind the session gate.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	authHandler := registerAuthRoutes(r, cfg, services)
	oauthHandler := registerGithubOAuthRoutes(r, cfg, services)

	protected := r.Group("")
	protected.Use(middleware.SessionAuthMiddleware(cfg.SessionCookieName, services.Session))
	{
		protected.GET("/check_session", authHandler.CheckSession)
		protected.POST("/auth/github/link", oauthHandler.LinkGithub)
		protected.GET("/auth/status", oauthHandler.OAuthStatus)

		registerNoteRoutes(protected, services)
		registerCoffeeRoutes(protected, services)
		registerCafeRoutes(protected, services)
	}
}
