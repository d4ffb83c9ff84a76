package services

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	"github.com/brewnotes/brewnotes_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// SignupUser creates a local-credential user with a salted password hash.
	SignupUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// GetOrCreateOAuthUser resolves a user by verified email, creating an
	// OAuth-flagged account (no password hash) when none exists.
	GetOrCreateOAuthUser(ctx context.Context, login string, email string) (*domain.User, error)

	// LinkGithubAccount attaches a GitHub identity to an existing user.
	LinkGithubAccount(ctx context.Context, userID string, githubID string, avatarURL *string) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	// An unknown username and a wrong password fail identically.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
