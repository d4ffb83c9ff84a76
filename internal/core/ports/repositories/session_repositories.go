package repositories

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// SessionRepository persists opaque session tokens (hashed) server-side.
type SessionRepository interface {
	TransactionManager

	// SaveSession inserts a new session row and sweeps the user's expired
	// rows in the same transaction.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByTokenHash retrieves a non-expired session by token hash.
	// Returns apperrors.ErrNotFound when the session is absent or expired.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)

	// DeleteSessionByTokenHash removes a session. Deleting an absent
	// session is not an error, so logout stays idempotent.
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error
}
