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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		GithubID:     d.GithubID,
		AvatarURL:    d.AvatarURL,
		IsOAuthUser:  d.IsOAuthUser,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Email:        m.Email,
		GithubID:     m.GithubID,
		AvatarURL:    m.AvatarURL,
		IsOAuthUser:  m.IsOAuthUser,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// mapUserConstraintError translates unique violations on the users table into
// conflict errors so concurrent creations or links cannot both succeed.
func mapUserConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		switch pgErr.ConstraintName {
		case "users_username_key":
			return apperrors.NewConflictError("Username already exists")
		case "users_email_key":
			return apperrors.NewConflictError("Email already in use")
		case "users_github_id_key":
			return apperrors.NewConflictError("GitHub account already linked to another user")
		}
		return apperrors.NewConflictError("User already exists")
	}
	return nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, username, password_hash, email, github_id, avatar_url, is_oauth_user, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Email,
		modelUser.GithubID,
		modelUser.AvatarURL,
		modelUser.IsOAuthUser,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		if conflictErr := mapUserConstraintError(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

const userColumns = `user_id, username, password_hash, email, github_id, avatar_url, is_oauth_user, created_at, last_updated_at`

func (r *PgxUserRepository) findUserWhere(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + `;`
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Username,
		&modelUser.PasswordHash,
		&modelUser.Email,
		&modelUser.GithubID,
		&modelUser.AvatarURL,
		&modelUser.IsOAuthUser,
		&modelUser.CreatedAt,
		&modelUser.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserWhere(ctx, "user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUserWhere(ctx, "username = $1", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserWhere(ctx, "email = $1", email)
}

func (r *PgxUserRepository) FindUserByGithubID(ctx context.Context, githubID string) (*domain.User, error) {
	return r.findUserWhere(ctx, "github_id = $1", githubID)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        UPDATE users
        SET username = $1, password_hash = $2, email = $3, github_id = $4, avatar_url = $5, last_updated_at = $6
        WHERE user_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelUser.Username,
		modelUser.PasswordHash,
		modelUser.Email,
		modelUser.GithubID,
		modelUser.AvatarURL,
		modelUser.LastUpdatedAt,
		modelUser.UserID,
	)
	if err != nil {
		if conflictErr := mapUserConstraintError(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
