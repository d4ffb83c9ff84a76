package services

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	"github.com/brewnotes/brewnotes_app/internal/dto"
)

// NoteSvcFacade defines operations on notes. All operations are scoped to
// the requesting user: a note belonging to someone else behaves as absent.
type NoteSvcFacade interface {
	// ListNotesForUser retrieves exactly the notes authored by userID.
	ListNotesForUser(ctx context.Context, userID string) ([]domain.Note, error)

	// CreateNote creates a note owned by userID for an existing coffee.
	CreateNote(ctx context.Context, userID string, req dto.CreateNoteRequest) (*domain.Note, error)

	// GetNoteByID retrieves a note owned by userID.
	GetNoteByID(ctx context.Context, userID string, noteID string) (*domain.Note, error)

	// UpdateNote applies a partial update to a note owned by userID.
	UpdateNote(ctx context.Context, userID string, noteID string, req dto.UpdateNoteRequest) (*domain.Note, error)

	// DeleteNote removes a note owned by userID.
	DeleteNote(ctx context.Context, userID string, noteID string) error
}
