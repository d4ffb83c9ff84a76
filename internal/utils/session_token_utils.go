package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSessionToken generates a SHA256 hash of a session token.
// Only the hash is persisted, so a leaked sessions table cannot be replayed.
func HashSessionToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}
