package domain

// GithubUserInfo is the slice of GitHub's /user response this application uses.
// The email is empty when the user hides it in their GitHub settings.
type GithubUserInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// GithubEmail is one entry of GitHub's /user/emails response.
type GithubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}
