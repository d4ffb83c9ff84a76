package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CoffeeHandler handles the coffee CRUD endpoints. Coffees are shared among
// all authenticated users.
type CoffeeHandler struct {
	coffeeService portssvc.CoffeeSvcFacade
}

// NewCoffeeHandler creates a new CoffeeHandler.
func NewCoffeeHandler(cs portssvc.CoffeeSvcFacade) *CoffeeHandler {
	return &CoffeeHandler{coffeeService: cs}
}

// registerCoffeeRoutes sets up the coffee routes on the gated group.
func registerCoffeeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) *CoffeeHandler {
	h := NewCoffeeHandler(services.Coffee)

	coffees := rg.Group("/coffees")
	{
		coffees.GET("", h.ListCoffees)
		coffees.POST("", h.CreateCoffee)
		coffees.GET("/:coffeeID", h.GetCoffee)
		coffees.PATCH("/:coffeeID", h.UpdateCoffee)
		coffees.DELETE("/:coffeeID", h.DeleteCoffee)
	}

	return h
}

// ListCoffees returns every coffee.
func (h *CoffeeHandler) ListCoffees(c *gin.Context) {
	coffees, err := h.coffeeService.ListCoffees(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to fetch coffees")
		return
	}

	c.JSON(http.StatusOK, dto.ToCoffeeResponses(coffees))
}

// CreateCoffee creates a coffee under an existing cafe.
func (h *CoffeeHandler) CreateCoffee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCoffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Name and cafe_id are required"})
		return
	}

	coffee, err := h.coffeeService.CreateCoffee(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create coffee", slog.String("cafe_id", req.CafeID), slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to create coffee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCoffeeResponse(coffee))
}

// GetCoffee returns a single coffee.
func (h *CoffeeHandler) GetCoffee(c *gin.Context) {
	coffee, err := h.coffeeService.GetCoffeeByID(c.Request.Context(), c.Param("coffeeID"))
	if err != nil {
		respondWithError(c, err, "Coffee not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToCoffeeResponse(coffee))
}

// UpdateCoffee applies a partial update to a coffee.
func (h *CoffeeHandler) UpdateCoffee(c *gin.Context) {
	var req dto.UpdateCoffeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid request body"})
		return
	}

	coffee, err := h.coffeeService.UpdateCoffee(c.Request.Context(), c.Param("coffeeID"), req)
	if err != nil {
		respondWithError(c, err, "Coffee not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToCoffeeResponse(coffee))
}

// DeleteCoffee removes a coffee.
func (h *CoffeeHandler) DeleteCoffee(c *gin.Context) {
	if err := h.coffeeService.DeleteCoffee(c.Request.Context(), c.Param("coffeeID")); err != nil {
		respondWithError(c, err, "Coffee not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Coffee deleted successfully"})
}
