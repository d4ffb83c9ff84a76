package services

import (
	"context"
	"fmt"
	"time"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/google/uuid"
)

type cafeService struct {
	cafeRepo portsrepo.CafeRepository
}

// NewCafeService creates the cafe service.
func NewCafeService(cafeRepo portsrepo.CafeRepository) portssvc.CafeSvcFacade {
	return &cafeService{cafeRepo: cafeRepo}
}

var _ portssvc.CafeSvcFacade = (*cafeService)(nil)

func (s *cafeService) ListCafes(ctx context.Context) ([]domain.Cafe, error) {
	cafes, err := s.cafeRepo.FindCafes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cafes: %w", err)
	}
	return cafes, nil
}

func (s *cafeService) CreateCafe(ctx context.Context, req dto.CreateCafeRequest) (*domain.Cafe, error) {
	now := time.Now()
	cafe := domain.Cafe{
		CafeID:   uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.cafeRepo.SaveCafe(ctx, cafe); err != nil {
		return nil, fmt.Errorf("failed to create cafe: %w", err)
	}
	return &cafe, nil
}

func (s *cafeService) GetCafeByID(ctx context.Context, cafeID string) (*domain.Cafe, error) {
	return s.cafeRepo.FindCafeByID(ctx, cafeID)
}

func (s *cafeService) UpdateCafe(ctx context.Context, cafeID string, req dto.UpdateCafeRequest) (*domain.Cafe, error) {
	cafe, err := s.cafeRepo.FindCafeByID(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cafe.Name = *req.Name
	}
	if req.Location != nil {
		cafe.Location = *req.Location
	}
	cafe.LastUpdatedAt = time.Now()

	if err := s.cafeRepo.UpdateCafe(ctx, *cafe); err != nil {
		return nil, fmt.Errorf("failed to update cafe: %w", err)
	}
	return cafe, nil
}

func (s *cafeService) DeleteCafe(ctx context.Context, cafeID string) error {
	return s.cafeRepo.DeleteCafe(ctx, cafeID)
}
