package repositories

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByGithubID retrieves a user by their linked GitHub identifier.
	FindUserByGithubID(ctx context.Context, githubID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Uniqueness of username, email and
	// github_id is enforced by the database; violations surface as
	// apperrors.NewConflictError so concurrent creations cannot both succeed.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details, with the same
	// conflict mapping for github_id uniqueness races.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
