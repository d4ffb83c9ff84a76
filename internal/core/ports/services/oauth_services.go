package services

import (
	"context"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	"golang.org/x/oauth2"
)

// GithubOAuthSvcFacade wraps the GitHub authorization-code flow.
type GithubOAuthSvcFacade interface {
	// GenerateStateString creates a secure random string used as a CSRF
	// token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGithubLoginURL returns the provider authorization URL to redirect
	// the user to.
	GetGithubLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the authenticated user's GitHub profile.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GithubUserInfo, error)

	// GetVerifiedEmail queries the user's email list and returns the first
	// address marked both primary and verified, or "" when none exists.
	GetVerifiedEmail(ctx context.Context, token *oauth2.Token) (string, error)
}
