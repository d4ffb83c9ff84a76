package services

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	"github.com/brewnotes/brewnotes_app/internal/dto"
)

// CafeSvcFacade defines operations on cafes. Cafes are shared:
// any authenticated user may read or mutate them.
type CafeSvcFacade interface {
	// ListCafes retrieves all cafes.
	ListCafes(ctx context.Context) ([]domain.Cafe, error)

	// CreateCafe creates a new cafe.
	CreateCafe(ctx context.Context, req dto.CreateCafeRequest) (*domain.Cafe, error)

	// GetCafeByID retrieves a specific cafe.
	GetCafeByID(ctx context.Context, cafeID string) (*domain.Cafe, error)

	// UpdateCafe applies a partial update to a cafe.
	UpdateCafe(ctx context.Context, cafeID string, req dto.UpdateCafeRequest) (*domain.Cafe, error)

	// DeleteCafe removes a cafe.
	DeleteCafe(ctx context.Context, cafeID string) error
}
