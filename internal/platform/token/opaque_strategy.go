package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

const (
	// tokenBytes is the entropy of an opaque token (256 bits, 64 hex chars).
	tokenBytes = 32

	// maxIssueAttempts bounds the retry on transient store failures during
	// issuance. A duplicate token aborts instead of retrying.
	maxIssueAttempts = 3
)

// OpaqueStrategy implements usecase.TokenStrategy with random tokens recorded
// server-side. Revocation is immediate (the record is deleted); expiry is
// enforced lazily at validation time.
type OpaqueStrategy struct {
	repo     Repository
	lifetime time.Duration
}

// Compile-time check to ensure OpaqueStrategy implements TokenStrategy.
var _ usecase.TokenStrategy = (*OpaqueStrategy)(nil)

// NewOpaqueStrategy creates an opaque token strategy backed by the given
// repository.
func NewOpaqueStrategy(repo Repository, lifetime time.Duration) *OpaqueStrategy {
	return &OpaqueStrategy{
		repo:     repo,
		lifetime: lifetime,
	}
}

// newTokenValue generates a cryptographically random token string.
func newTokenValue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue generates a random token and persists it before returning it to the
// caller (persist-before-respond). The generate-then-insert order makes the
// retry idempotent: no token value is ever handed out unpersisted.
func (s *OpaqueStrategy) Issue(ctx context.Context, user *entity.User) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		value, err := newTokenValue()
		if err != nil {
			return "", err
		}

		record := &entity.AccessToken{
			Token:     value,
			UserID:    user.ID,
			CreatedAt: time.Now(),
		}
		err = s.repo.Create(ctx, record)
		if err == nil {
			return value, nil
		}
		if errors.Is(err, ErrDuplicateToken) {
			// A 256-bit collision means something is wrong upstream.
			return "", fmt.Errorf("token collision: %w", err)
		}
		lastErr = err
	}
	return "", fmt.Errorf("failed to persist token after %d attempts: %w", maxIssueAttempts, lastErr)
}

// Validate resolves the token via a single store lookup and applies the lazy
// expiry check. An absent record fails with ErrTokenRevoked; a store error
// fails closed, never as a default identity.
func (s *OpaqueStrategy) Validate(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	record, err := s.repo.FindByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return uuid.Nil, ErrTokenRevoked
		}
		return uuid.Nil, fmt.Errorf("token lookup failed: %w", err)
	}
	if record.IsExpired(s.lifetime) {
		return uuid.Nil, ErrTokenExpired
	}
	return record.UserID, nil
}

// Revoke deletes the token record, invalidating it immediately.
// Revoking an unknown token is not an error.
func (s *OpaqueStrategy) Revoke(ctx context.Context, tokenStr string) error {
	if err := s.repo.Delete(ctx, tokenStr); err != nil && !errors.Is(err, ErrTokenNotFound) {
		return err
	}
	return nil
}

// Lifetime returns the fixed token lifetime applied at issuance.
func (s *OpaqueStrategy) Lifetime() time.Duration {
	return s.lifetime
}
