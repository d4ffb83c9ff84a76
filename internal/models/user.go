package models

// User is the database representation of a user row.
// Nullable columns are pointers so absent values scan cleanly.
type User struct {
	UserID       string  `db:"user_id"`
	Username     string  `db:"username"`
	PasswordHash *string `db:"password_hash"`
	Email        *string `db:"email"`
	GithubID     *string `db:"github_id"`
	AvatarURL    *string `db:"avatar_url"`
	IsOAuthUser  bool    `db:"is_oauth_user"`
	AuditFields
}
