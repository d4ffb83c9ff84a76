package repositories

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// NoteRepository defines persistence operations for notes.
// Every read is scoped to the owning user: there is no way to fetch
// another user's note through this interface.
type NoteRepository interface {
	// SaveNote persists a new note.
	SaveNote(ctx context.Context, note domain.Note) error

	// FindNoteByID retrieves a note owned by userID.
	FindNoteByID(ctx context.Context, noteID string, userID string) (*domain.Note, error)

	// FindNotesByUserID retrieves exactly the notes authored by userID.
	FindNotesByUserID(ctx context.Context, userID string) ([]domain.Note, error)

	// UpdateNote updates a note owned by note.UserID.
	UpdateNote(ctx context.Context, note domain.Note) error

	// DeleteNote removes a note owned by userID.
	DeleteNote(ctx context.Context, noteID string, userID string) error
}
