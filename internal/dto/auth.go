package dto

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LinkGithubRequest is the body of POST /auth/github/link.
type LinkGithubRequest struct {
	GithubID  string  `json:"github_id" binding:"required"`
	AvatarURL *string `json:"avatar_url"`
}

// OAuthStatusResponse is the body of GET /auth/status.
type OAuthStatusResponse struct {
	IsOAuthUser     bool    `json:"is_oauth_user"`
	HasGithubLinked bool    `json:"has_github_linked"`
	AvatarURL       *string `json:"avatar_url"`
}

// MessageResponse is a generic success message body.
type MessageResponse struct {
	Message string `json:"message"`
}
