package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brewnotes/brewnotes_app/internal/core/domain"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/platform/config"
	"github.com/brewnotes/brewnotes_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// githubOAuthService implements the GithubOAuthSvcFacade.
type githubOAuthService struct {
	oauth2Config *oauth2.Config
	// apiBaseURL is overridable so tests can point at a fake GitHub API.
	apiBaseURL string
}

// NewGithubOAuthService creates a new instance of githubOAuthService.
func NewGithubOAuthService(cfg *config.Config) portssvc.GithubOAuthSvcFacade {
	return &githubOAuthService{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  cfg.GithubRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint, // from "golang.org/x/oauth2/github"
		},
		apiBaseURL: "https://api.github.com",
	}
}

var _ portssvc.GithubOAuthSvcFacade = (*githubOAuthService)(nil)

// GenerateStateString creates a secure random string to be used as a CSRF token for the OAuth flow.
func (s *githubOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	// 16 bytes -> 32 char hex string
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGithubLoginURL returns the URL to redirect the user to for GitHub login.
func (s *githubOAuthService) GetGithubLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *githubOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo uses the access token to fetch the user's GitHub profile.
// The email field is empty when the user hides it in their GitHub settings.
func (s *githubOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GithubUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(s.apiBaseURL + "/user")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned non-200 status for user: %s", resp.Status)
	}

	var userInfo domain.GithubUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info from github: %w", err)
	}
	return &userInfo, nil
}

// GetVerifiedEmail queries the user's email list and returns the first entry
// marked both primary and verified, or "" when none qualifies.
func (s *githubOAuthService) GetVerifiedEmail(ctx context.Context, token *oauth2.Token) (string, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(s.apiBaseURL + "/user/emails")
	if err != nil {
		return "", fmt.Errorf("failed to get user emails from github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api returned non-200 status for user emails: %s", resp.Status)
	}

	var emails []domain.GithubEmail
	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", fmt.Errorf("failed to decode user emails from github: %w", err)
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}
