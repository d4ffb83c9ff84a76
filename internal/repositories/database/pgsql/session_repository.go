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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

// SaveSession inserts the new session and sweeps the same user's expired
// rows in one transaction, so abandoned logins do not pile up in the table.
func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	_, err = tx.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1 AND expires_at <= NOW();`, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to sweep expired sessions: %w", err)
	}

	query := `
        INSERT INTO sessions (token_hash, user_id, created_at, expires_at)
        VALUES ($1, $2, $3, $4);
    `
	_, err = tx.Exec(ctx, query,
		session.TokenHash,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	// Expired rows are indistinguishable from absent ones.
	query := `
        SELECT token_hash, user_id, created_at, expires_at
        FROM sessions
        WHERE token_hash = $1 AND expires_at > NOW();
    `
	var modelSession models.Session
	err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(
		&modelSession.TokenHash,
		&modelSession.UserID,
		&modelSession.CreatedAt,
		&modelSession.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &domain.Session{
		TokenHash: modelSession.TokenHash,
		UserID:    modelSession.UserID,
		CreatedAt: modelSession.CreatedAt,
		ExpiresAt: modelSession.ExpiresAt,
	}, nil
}

func (r *PgxSessionRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	// No RowsAffected check: deleting an absent session keeps logout idempotent.
	_, err := r.Pool.Exec(ctx, `DELETE FROM sessions WHERE token_hash = $1;`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
