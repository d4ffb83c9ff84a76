package dto

import (
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// CreateCoffeeRequest is the body of POST /coffees.
type CreateCoffeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	CafeID      string  `json:"cafe_id" binding:"required"`
}

// UpdateCoffeeRequest is the body of PATCH /coffees/:id.
type UpdateCoffeeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CoffeeResponse is the serialized representation of a coffee.
type CoffeeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CafeID      string  `json:"cafe_id"`
}

// ToCoffeeResponse converts a domain.Coffee to its API representation.
func ToCoffeeResponse(coffee *domain.Coffee) CoffeeResponse {
	return CoffeeResponse{
		ID:          coffee.CoffeeID,
		Name:        coffee.Name,
		Description: coffee.Description,
		CafeID:      coffee.CafeID,
	}
}

// ToCoffeeResponses converts a slice of coffees.
func ToCoffeeResponses(coffees []domain.Coffee) []CoffeeResponse {
	resps := make([]CoffeeResponse, len(coffees))
	for i := range coffees {
		resps[i] = ToCoffeeResponse(&coffees[i])
	}
	return resps
}
