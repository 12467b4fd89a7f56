package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken represents an opaque access token persisted server-side.
// The token string itself is the capability: possession implies
// authentication, so it must be cryptographically random.
type AccessToken struct {
	Token     string    // Random token value (64-character hex string)
	UserID    uuid.UUID // Owning user ID
	CreatedAt time.Time // Issuance time
}

// IsExpired returns true once the token has outlived the given lifetime.
// Expiry is enforced lazily at validation time rather than by eager deletion.
func (t *AccessToken) IsExpired(lifetime time.Duration) bool {
	return time.Now().After(t.CreatedAt.Add(lifetime))
}
