package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/brewnotes/brewnotes_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login, logout and the session probe.
type AuthHandler struct {
	userService    portssvc.UserSvcFacade
	sessionService portssvc.SessionSvcFacade
	noteService    portssvc.NoteSvcFacade
	cookieName     string
	cookieMaxAge   time.Duration
	secureCookies  bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ss portssvc.SessionSvcFacade, ns portssvc.NoteSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:    us,
		sessionService: ss,
		noteService:    ns,
		cookieName:     cfg.SessionCookieName,
		cookieMaxAge:   cfg.SessionTTL,
		secureCookies:  cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) *AuthHandler {
	h := NewAuthHandler(services.User, services.Session, services.Note, cfg)

	// Credential endpoints get an IP rate limit (e.g. "5-M": 5 per minute).
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate = limiter.Rate{Period: time.Minute, Limit: 5}
	}
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	r.POST("/signup", limitMiddleware, h.Signup)
	r.POST("/login", limitMiddleware, h.Login)
	r.DELETE("/logout", h.Logout)

	return h
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, int(h.cookieMaxAge.Seconds()), "/", "", h.secureCookies, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookies, true)
}

// Signup creates a local account and logs it in.
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Username and password are required"})
		return
	}

	user, err := h.userService.SignupUser(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Signup failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to create account")
		return
	}

	token, err := h.sessionService.Establish(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to establish session after signup", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create account"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Login authenticates a local credential and establishes a session.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error("Login failed unexpectedly", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	token, err := h.sessionService.Establish(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to establish session after login", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Logout clears the session unconditionally. It succeeds with 204 whether or
// not a session existed.
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.sessionService.Clear(c.Request.Context(), token); err != nil {
			// Still a 204: the cookie is gone either way.
			logger.Error("Failed to clear session on logout", slog.String("error", err.Error()))
		}
	}

	h.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

// CheckSession returns the current user with only the notes they authored.
// Registered behind the session gate.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not signed in"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Session survived the user; treat as signed out.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User not signed in"})
			return
		}
		logger.Error("Failed to load user for session probe", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check session"})
		return
	}

	notes, err := h.noteService.ListNotesForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load notes for session probe", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponseWithNotes(user, notes))
}
