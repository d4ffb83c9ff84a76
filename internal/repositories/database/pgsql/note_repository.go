package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	"github.com/brewnotes/brewnotes_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNoteRepository struct {
	BaseRepository
}

func newPgxNoteRepository(db *pgxpool.Pool) portsrepo.NoteRepository {
	return &PgxNoteRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.NoteRepository = (*PgxNoteRepository)(nil)

func toDomainNote(m models.Note) domain.Note {
	return domain.Note{
		NoteID:   m.NoteID,
		Rating:   m.Rating,
		Comment:  m.Comment,
		UserID:   m.UserID,
		CoffeeID: m.CoffeeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	query := `
        INSERT INTO notes (note_id, rating, comment, user_id, coffee_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		note.NoteID,
		note.Rating,
		note.Comment,
		note.UserID,
		note.CoffeeID,
		note.CreatedAt,
		note.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewNotFoundError("Coffee not found")
		}
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

const noteColumns = `note_id, rating, comment, user_id, coffee_id, created_at, last_updated_at`

func (r *PgxNoteRepository) FindNoteByID(ctx context.Context, noteID string, userID string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE note_id = $1 AND user_id = $2;`
	var m models.Note
	err := r.Pool.QueryRow(ctx, query, noteID, userID).Scan(
		&m.NoteID, &m.Rating, &m.Comment, &m.UserID, &m.CoffeeID, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note %s: %w", noteID, err)
	}
	note := toDomainNote(m)
	return &note, nil
}

func (r *PgxNoteRepository) FindNotesByUserID(ctx context.Context, userID string) ([]domain.Note, error) {
	// Explicitly scoped to the author: nothing here can surface another
	// user's notes, even when several users reviewed the same coffee.
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var m models.Note
		if err := rows.Scan(&m.NoteID, &m.Rating, &m.Comment, &m.UserID, &m.CoffeeID, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, toDomainNote(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", rows.Err())
	}
	return notes, nil
}

func (r *PgxNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	query := `
        UPDATE notes
        SET rating = $1, comment = $2, last_updated_at = $3
        WHERE note_id = $4 AND user_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		note.Rating,
		note.Comment,
		note.LastUpdatedAt,
		note.NoteID,
		note.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update note query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("note not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxNoteRepository) DeleteNote(ctx context.Context, noteID string, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1 AND user_id = $2;`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("note not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
