package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/google/uuid"
)

type coffeeService struct {
	coffeeRepo portsrepo.CoffeeRepository
	cafeRepo   portsrepo.CafeRepository
}

// NewCoffeeService creates the coffee service.
func NewCoffeeService(coffeeRepo portsrepo.CoffeeRepository, cafeRepo portsrepo.CafeRepository) portssvc.CoffeeSvcFacade {
	return &coffeeService{coffeeRepo: coffeeRepo, cafeRepo: cafeRepo}
}

var _ portssvc.CoffeeSvcFacade = (*coffeeService)(nil)

func (s *coffeeService) ListCoffees(ctx context.Context) ([]domain.Coffee, error) {
	coffees, err := s.coffeeRepo.FindCoffees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coffees: %w", err)
	}
	return coffees, nil
}

func (s *coffeeService) CreateCoffee(ctx context.Context, req dto.CreateCoffeeRequest) (*domain.Coffee, error) {
	if _, err := s.cafeRepo.FindCafeByID(ctx, req.CafeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Cafe not found")
		}
		return nil, fmt.Errorf("failed to check cafe for coffee: %w", err)
	}

	now := time.Now()
	coffee := domain.Coffee{
		CoffeeID:    uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CafeID:      req.CafeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.coffeeRepo.SaveCoffee(ctx, coffee); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("failed to create coffee: %w", err)
	}
	return &coffee, nil
}

func (s *coffeeService) GetCoffeeByID(ctx context.Context, coffeeID string) (*domain.Coffee, error) {
	return s.coffeeRepo.FindCoffeeByID(ctx, coffeeID)
}

func (s *coffeeService) UpdateCoffee(ctx context.Context, coffeeID string, req dto.UpdateCoffeeRequest) (*domain.Coffee, error) {
	coffee, err := s.coffeeRepo.FindCoffeeByID(ctx, coffeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		coffee.Name = *req.Name
	}
	if req.Description != nil {
		coffee.Description = req.Description
	}
	coffee.LastUpdatedAt = time.Now()

	if err := s.coffeeRepo.UpdateCoffee(ctx, *coffee); err != nil {
		return nil, fmt.Errorf("failed to update coffee: %w", err)
	}
	return coffee, nil
}

func (s *coffeeService) DeleteCoffee(ctx context.Context, coffeeID string) error {
	return s.coffeeRepo.DeleteCoffee(ctx, coffeeID)
}
