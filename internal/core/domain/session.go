package domain

import "time"

// Session binds an opaque client-held token to exactly one user.
// Only the SHA256 hash of the token is ever stored.
type Session struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}
