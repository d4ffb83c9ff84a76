package domain

// User represents an account holder in the domain.
//
// PasswordHash is nil iff the account has no local credential (OAuth-created
// accounts). IsOAuthUser records how the account was created and is never
// derived from other fields; linking a GitHub identity later does not change it.
type User struct {
	UserID       string  `json:"userID"`
	Username     string  `json:"username"`
	PasswordHash *string `json:"-"`
	Email        *string `json:"email,omitempty"`
	GithubID     *string `json:"githubID,omitempty"`
	AvatarURL    *string `json:"avatarURL,omitempty"`
	IsOAuthUser  bool    `json:"isOAuthUser"`
	AuditFields
}

// HasGithubLinked reports whether a GitHub identity is attached to this user.
func (u *User) HasGithubLinked() bool {
	return u.GithubID != nil && *u.GithubID != ""
}
