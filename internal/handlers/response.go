package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError translates service errors into HTTP responses. Unexpected
// errors are logged with full detail and surface as a generic message only.
func respondWithError(c *gin.Context, err error, fallbackMessage string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: fallbackMessage})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: fallbackMessage})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unexpected error handling request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMessage})
	}
}
