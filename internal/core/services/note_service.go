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

type noteService struct {
	noteRepo   portsrepo.NoteRepository
	coffeeRepo portsrepo.CoffeeRepository
}

// NewNoteService creates the note service.
func NewNoteService(noteRepo portsrepo.NoteRepository, coffeeRepo portsrepo.CoffeeRepository) portssvc.NoteSvcFacade {
	return &noteService{noteRepo: noteRepo, coffeeRepo: coffeeRepo}
}

var _ portssvc.NoteSvcFacade = (*noteService)(nil)

func (s *noteService) ListNotesForUser(ctx context.Context, userID string) ([]domain.Note, error) {
	notes, err := s.noteRepo.FindNotesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) CreateNote(ctx context.Context, userID string, req dto.CreateNoteRequest) (*domain.Note, error) {
	if _, err := s.coffeeRepo.FindCoffeeByID(ctx, req.CoffeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Coffee not found")
		}
		return nil, fmt.Errorf("failed to check coffee for note: %w", err)
	}

	now := time.Now()
	note := domain.Note{
		NoteID:   uuid.NewString(),
		Rating:   *req.Rating,
		Comment:  req.Comment,
		UserID:   userID,
		CoffeeID: req.CoffeeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &note, nil
}

func (s *noteService) GetNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID string, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error) {
	note, err := s.noteRepo.FindNoteByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		note.Rating = *req.Rating
	}
	if req.Comment != nil {
		note.Comment = req.Comment
	}
	note.LastUpdatedAt = time.Now()

	if err := s.noteRepo.UpdateNote(ctx, *note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userID string, noteID string) error {
	return s.noteRepo.DeleteNote(ctx, noteID, userID)
}
