package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/brewnotes/brewnotes_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookieName = "oauth_state"

// stateCookieMaxAge bounds how long a pending OAuth flow stays valid.
const stateCookieMaxAge = 10 * time.Minute

// GithubOAuthHandler drives the GitHub authorization-code flow and the
// account-linking endpoints.
type GithubOAuthHandler struct {
	oauthService   portssvc.GithubOAuthSvcFacade
	userService    portssvc.UserSvcFacade
	sessionService portssvc.SessionSvcFacade
	cookieName     string
	cookieMaxAge   time.Duration
	secureCookies  bool
	frontendURL    string
}

// NewGithubOAuthHandler creates a new GithubOAuthHandler.
func NewGithubOAuthHandler(os portssvc.GithubOAuthSvcFacade, us portssvc.UserSvcFacade, ss portssvc.SessionSvcFacade, cfg *config.Config) *GithubOAuthHandler {
	return &GithubOAuthHandler{
		oauthService:   os,
		userService:    us,
		sessionService: ss,
		cookieName:     cfg.SessionCookieName,
		cookieMaxAge:   cfg.SessionTTL,
		secureCookies:  cfg.IsProduction,
		frontendURL:    cfg.FrontendBaseURL,
	}
}

// registerGithubOAuthRoutes sets up the public OAuth redirect routes.
func registerGithubOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) *GithubOAuthHandler {
	h := NewGithubOAuthHandler(services.GithubOAuth, services.User, services.Session, cfg)

	r.GET("/auth/github", h.GithubLogin)
	r.GET("/auth/github/callback", h.GithubCallback)

	return h
}

func (h *GithubOAuthHandler) setStateCookie(c *gin.Context, state string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, int(stateCookieMaxAge.Seconds()), "/", "", h.secureCookies, true)
}

func (h *GithubOAuthHandler) clearStateCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.secureCookies, true)
}

func (h *GithubOAuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.cookieMaxAge.Seconds()), "/", "", h.secureCookies, true)
}

// redirectFrontend sends the browser back to the frontend. The callback always
// ends in a redirect, never a JSON error: the user is mid-navigation.
func (h *GithubOAuthHandler) redirectFrontend(c *gin.Context, path string) {
	c.Redirect(http.StatusFound, h.frontendURL+path)
}

// GithubLogin starts the flow: mint a state token, pin it in a cookie and
// send the browser to GitHub's authorization page.
func (h *GithubOAuthHandler) GithubLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start GitHub login"})
		return
	}

	h.setStateCookie(c, state)
	c.Redirect(http.StatusFound, h.oauthService.GetGithubLoginURL(c.Request.Context(), state))
}

// GithubCallback completes the flow: verify state, exchange the code, resolve
// a verified email, find or create the account and establish a session.
// Every failure path redirects to the frontend without a session.
func (h *GithubOAuthHandler) GithubCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookieState, err := c.Cookie(oauthStateCookieName)
	h.clearStateCookie(c)
	if err != nil || cookieState == "" || c.Query("state") != cookieState {
		logger.Warn("OAuth state mismatch on callback")
		h.redirectFrontend(c, "/")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Warn("OAuth callback missing authorization code")
		h.redirectFrontend(c, "/")
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange OAuth code", slog.String("error", err.Error()))
		h.redirectFrontend(c, "/")
		return
	}

	info, err := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch GitHub user info", slog.String("error", err.Error()))
		h.redirectFrontend(c, "/")
		return
	}

	email := info.Email
	if email == "" {
		email, err = h.oauthService.GetVerifiedEmail(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to fetch GitHub emails", slog.String("error", err.Error()))
			h.redirectFrontend(c, "/")
			return
		}
	}
	if email == "" {
		// No primary verified email means no stable identity to key on.
		logger.Warn("GitHub account has no primary verified email", slog.String("login", info.Login))
		h.redirectFrontend(c, "/login?error=email-not-found")
		return
	}

	user, err := h.userService.GetOrCreateOAuthUser(c.Request.Context(), info.Login, email)
	if err != nil {
		logger.Error("Failed to resolve OAuth user", slog.String("error", err.Error()))
		h.redirectFrontend(c, "/")
		return
	}

	sessionToken, err := h.sessionService.Establish(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to establish session after OAuth login", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		h.redirectFrontend(c, "/")
		return
	}

	logger.Info("GitHub OAuth login completed", slog.String("user_id", user.UserID), slog.String("github_id", strconv.FormatInt(info.ID, 10)))
	h.setSessionCookie(c, sessionToken)
	h.redirectFrontend(c, "/")
}

// LinkGithub attaches a GitHub identity to the signed-in account.
// Registered behind the session gate.
func (h *GithubOAuthHandler) LinkGithub(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	var req dto.LinkGithubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "GitHub ID is required"})
		return
	}

	if _, err := h.userService.LinkGithubAccount(c.Request.Context(), userID, req.GithubID, req.AvatarURL); err != nil {
		logger.Warn("Failed to link GitHub account", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to link GitHub account")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "GitHub account linked successfully"})
}

// OAuthStatus reports whether the signed-in account came from OAuth and
// whether a GitHub identity is attached. Registered behind the session gate.
func (h *GithubOAuthHandler) OAuthStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to load user for OAuth status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch OAuth status"})
		return
	}

	c.JSON(http.StatusOK, dto.OAuthStatusResponse{
		IsOAuthUser:     user.IsOAuthUser,
		HasGithubLinked: user.HasGithubLinked(),
		AvatarURL:       user.AvatarURL,
	})
}
