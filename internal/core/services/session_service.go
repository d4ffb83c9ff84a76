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
	"github.com/brewnotes/brewnotes_app/internal/utils"
)

// sessionService issues and validates opaque session tokens. The raw token
// only ever lives in the client cookie; the store holds its SHA256 hash.
type sessionService struct {
	sessionRepo portsrepo.SessionRepository
	ttl         time.Duration
}

// NewSessionService creates the session service.
func NewSessionService(sessionRepo portsrepo.SessionRepository, ttl time.Duration) portssvc.SessionSvcFacade {
	return &sessionService{sessionRepo: sessionRepo, ttl: ttl}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) Establish(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := domain.Session{
		TokenHash: utils.HashSessionToken(token),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}
	return token, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrUnauthorized
	}
	session, err := s.sessionRepo.FindSessionByTokenHash(ctx, utils.HashSessionToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return session.UserID, nil
}

func (s *sessionService) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteSessionByTokenHash(ctx, utils.HashSessionToken(token)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
