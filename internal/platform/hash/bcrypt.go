// Package hash provides the bcrypt password hasher.
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/usecase"
)

// BcryptHasher implements usecase.PasswordHasher using bcrypt.
// bcrypt embeds a per-call random salt in its output and performs a
// constant-time comparison on verify.
type BcryptHasher struct {
	cost int
}

// Compile-time check to ensure BcryptHasher implements PasswordHasher.
var _ usecase.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given bcrypt cost.
// A cost of 0 selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash from the plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
// A mismatch returns usecase.ErrPasswordMismatch; an unparseable stored hash
// returns usecase.ErrCorruptCredential so that corrupted records are never
// silently treated as a plain non-match.
func (h *BcryptHasher) Verify(plaintext, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return usecase.ErrPasswordMismatch
	}
	return fmt.Errorf("%w: %v", usecase.ErrCorruptCredential, err)
}
