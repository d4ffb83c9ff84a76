package repositories

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// CoffeeRepository defines persistence operations for coffees.
type CoffeeRepository interface {
	// SaveCoffee persists a new coffee.
	SaveCoffee(ctx context.Context, coffee domain.Coffee) error

	// FindCoffeeByID retrieves a specific coffee.
	FindCoffeeByID(ctx context.Context, coffeeID string) (*domain.Coffee, error)

	// FindCoffees retrieves all coffees.
	FindCoffees(ctx context.Context) ([]domain.Coffee, error)

	// UpdateCoffee updates an existing coffee.
	UpdateCoffee(ctx context.Context, coffee domain.Coffee) error

	// DeleteCoffee removes a coffee.
	DeleteCoffee(ctx context.Context, coffeeID string) error
}
