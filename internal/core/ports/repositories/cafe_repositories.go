package repositories

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// CafeRepository defines persistence operations for cafes.
type CafeRepository interface {
	// SaveCafe persists a new cafe.
	SaveCafe(ctx context.Context, cafe domain.Cafe) error

	// FindCafeByID retrieves a specific cafe.
	FindCafeByID(ctx context.Context, cafeID string) (*domain.Cafe, error)

	// FindCafes retrieves all cafes.
	FindCafes(ctx context.Context) ([]domain.Cafe, error)

	// UpdateCafe updates an existing cafe.
	UpdateCafe(ctx context.Context, cafe domain.Cafe) error

	// DeleteCafe removes a cafe.
	DeleteCafe(ctx context.Context, cafeID string) error
}
