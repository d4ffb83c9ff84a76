package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CafeHandler handles the cafe CRUD endpoints. Cafes are shared among all
// authenticated users.
type CafeHandler struct {
	cafeService portssvc.CafeSvcFacade
}

// NewCafeHandler creates a new CafeHandler.
func NewCafeHandler(cs portssvc.CafeSvcFacade) *CafeHandler {
	return &CafeHandler{cafeService: cs}
}

// registerCafeRoutes sets up the cafe routes on the gated group.
func registerCafeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) *CafeHandler {
	h := NewCafeHandler(services.Cafe)

	cafes := rg.Group("/cafes")
	{
		cafes.GET("", h.ListCafes)
		cafes.POST("", h.CreateCafe)
		cafes.GET("/:cafeID", h.GetCafe)
		cafes.PATCH("/:cafeID", h.UpdateCafe)
		cafes.DELETE("/:cafeID", h.DeleteCafe)
	}

	return h
}

// ListCafes returns every cafe.
func (h *CafeHandler) ListCafes(c *gin.Context) {
	cafes, err := h.cafeService.ListCafes(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to fetch cafes")
		return
	}

	c.JSON(http.StatusOK, dto.ToCafeResponses(cafes))
}

// CreateCafe creates a new cafe.
func (h *CafeHandler) CreateCafe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Name and location are required"})
		return
	}

	cafe, err := h.cafeService.CreateCafe(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create cafe", slog.String("name", req.Name), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to create cafe")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCafeResponse(cafe))
}

// GetCafe returns a single cafe.
func (h *CafeHandler) GetCafe(c *gin.Context) {
	cafe, err := h.cafeService.GetCafeByID(c.Request.Context(), c.Param("cafeID"))
	if err != nil {
		respondWithError(c, err, "Cafe not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToCafeResponse(cafe))
}

// UpdateCafe applies a partial update to a cafe.
func (h *CafeHandler) UpdateCafe(c *gin.Context) {
	var req dto.UpdateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	cafe, err := h.cafeService.UpdateCafe(c.Request.Context(), c.Param("cafeID"), req)
	if err != nil {
		respondWithError(c, err, "Cafe not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToCafeResponse(cafe))
}

// DeleteCafe removes a cafe.
func (h *CafeHandler) DeleteCafe(c *gin.Context) {
	if err := h.cafeService.DeleteCafe(c.Request.Context(), c.Param("cafeID")); err != nil {
		respondWithError(c, err, "Cafe not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Cafe deleted successfully"})
}
