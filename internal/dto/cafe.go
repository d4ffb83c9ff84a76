package dto

import (
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// CreateCafeRequest is the body of POST /cafes.
type CreateCafeRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// UpdateCafeRequest is the body of PATCH /cafes/:id.
type UpdateCafeRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// CafeResponse is the serialized representation of a cafe.
type CafeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ToCafeResponse converts a domain.Cafe to its API representation.
func ToCafeResponse(cafe *domain.Cafe) CafeResponse {
	return CafeResponse{
		ID:       cafe.CafeID,
		Name:     cafe.Name,
		Location: cafe.Location,
	}
}

// ToCafeResponses converts a slice of cafes.
func ToCafeResponses(cafes []domain.Cafe) []CafeResponse {
	resps := make([]CafeResponse, len(cafes))
	for i := range cafes {
		resps[i] = ToCafeResponse(&cafes[i])
	}
	return resps
}
