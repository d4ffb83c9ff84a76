package services

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	"github.com/brewnotes/brewnotes_app/internal/dto"
)

// CoffeeSvcFacade defines operations on coffees. Coffees are shared:
// any authenticated user may read or mutate them.
type CoffeeSvcFacade interface {
	// ListCoffees retrieves all coffees.
	ListCoffees(ctx context.Context) ([]domain.Coffee, error)

	// CreateCoffee creates a coffee under an existing cafe.
	CreateCoffee(ctx context.Context, req dto.CreateCoffeeRequest) (*domain.Coffee, error)

	// GetCoffeeByID retrieves a specific coffee.
	GetCoffeeByID(ctx context.Context, coffeeID string) (*domain.Coffee, error)

	// UpdateCoffee applies a partial update to a coffee.
	UpdateCoffee(ctx context.Context, coffeeID string, req dto.UpdateCoffeeRequest) (*domain.Coffee, error)

	// DeleteCoffee removes a coffee.
	DeleteCoffee(ctx context.Context, coffeeID string) error
}
