package services

import "context"

// SessionSvcFacade manages opaque server-side sessions.
// A session is either fully bound to exactly one user or absent.
type SessionSvcFacade interface {
	// Establish creates a session for userID and returns the raw token
	// handed to the client.
	Establish(ctx context.Context, userID string) (string, error)

	// Resolve returns the user ID bound to the given raw token, or
	// apperrors.ErrUnauthorized when the session is absent or expired.
	Resolve(ctx context.Context, token string) (string, error)

	// Clear invalidates the session immediately. Clearing an already
	// absent session succeeds.
	Clear(ctx context.Context, token string) error
}
