package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brewnotes/brewnotes_app/internal/apperrors"
	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/dto"
	"github.com/brewnotes/brewnotes_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// SignupUser creates a local-credential account. The username existence check
// is advisory only; the real uniqueness guarantee is the database constraint,
// which SaveUser surfaces as a conflict when two signups race.
func (s *userService) SignupUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationFailedError("Username and password are required")
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Username already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: &hash,
		IsOAuthUser:  false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// AuthenticateUser verifies a local credential. An absent user and a wrong
// password return the same error so usernames cannot be enumerated.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid username or password")
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if user.PasswordHash == nil || !utils.CheckPasswordHash(password, *user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid username or password")
	}
	return user, nil
}

// GetOrCreateOAuthUser resolves the account for a completed OAuth flow by
// verified email. A matching email reuses the existing account; otherwise a
// new account is created with IsOAuthUser=true and no password hash.
func (s *userService) GetOrCreateOAuthUser(ctx context.Context, login string, email string) (*domain.User, error) {
	if email == "" {
		return nil, apperrors.NewValidationFailedError("Email is required for OAuth accounts")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username := login
	if username == "" {
		// GitHub profiles can omit the login; fall back to the email local part.
		username = strings.SplitN(email, "@", 2)[0]
	}

	now := time.Now()
	newUser := domain.User{
		UserID:      uuid.NewString(),
		Username:    username,
		Email:       &email,
		IsOAuthUser: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && errors.Is(appErr, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent callback for the same email.
			if existing, findErr := s.userRepo.FindUserByEmail(ctx, email); findErr == nil {
				return existing, nil
			}
			return nil, appErr
		}
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	return &newUser, nil
}

// LinkGithubAccount attaches a GitHub identity to userID. Linking an identity
// already claimed by a different user is a conflict and leaves the current
// user untouched; the database unique constraint closes the race window.
func (s *userService) LinkGithubAccount(ctx context.Context, userID string, githubID string, avatarURL *string) (*domain.User, error) {
	if githubID == "" {
		return nil, apperrors.NewValidationFailedError("GitHub ID required")
	}

	claimed, err := s.userRepo.FindUserByGithubID(ctx, githubID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check github id availability: %w", err)
	}
	if claimed != nil && claimed.UserID != userID {
		return nil, apperrors.NewConflictError("GitHub account already linked to another user")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}

	user.GithubID = &githubID
	user.AvatarURL = avatarURL
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("failed to link github account: %w", err)
	}
	return user, nil
}
