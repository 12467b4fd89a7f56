// Package token implements the access token strategies: a stateless signed
// JWT and an opaque token backed by server-side storage.
package token

import (
	"context"
	"errors"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
)

var (
	// ErrTokenExpired is returned when a token has outlived its lifetime.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenMalformed is returned when a token cannot be parsed or its
	// signature does not verify.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenRevoked is returned when an opaque token is absent from the
	// store, either because it was revoked or because it never existed.
	// The two cases are indistinguishable by design.
	ErrTokenRevoked = errors.New("token revoked or unknown")

	// ErrTokenNotFound is returned by Repository implementations when no
	// record matches the token.
	ErrTokenNotFound = errors.New("token not found")

	// ErrDuplicateToken is returned by Repository implementations when the
	// token value already exists. Issuance aborts on it instead of retrying.
	ErrDuplicateToken = errors.New("token already exists")
)

// Repository abstracts the persistence layer for opaque access tokens.
// Following Go convention: interfaces are defined by the consumer (the opaque
// strategy), not the providers (adapters, tokenstore).
type Repository interface {
	// Create persists a new access token. It returns ErrDuplicateToken when
	// the token value is already present.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByToken retrieves a token record by its value.
	// It returns ErrTokenNotFound when no record matches.
	FindByToken(ctx context.Context, token string) (*entity.AccessToken, error)

	// Delete removes a token record, revoking it immediately.
	// It returns ErrTokenNotFound when no record matches.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all tokens created before the cutoff and returns
	// the number of deleted records. Expiry is otherwise enforced lazily at
	// validation time; this bounds storage growth.
	DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error)
}
