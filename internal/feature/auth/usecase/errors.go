// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create or update a user
	// with an email that already exists. Uniqueness is enforced by the storage
	// layer's constraint, never by a read-then-write check.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned during login when email or password is
	// invalid. It deliberately does not distinguish between an unknown email,
	// a wrong password and a deactivated account.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordMismatch is returned by PasswordHasher.Verify when the
	// plaintext does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrCorruptCredential is returned when a stored password hash cannot be
	// parsed. It is kept distinct from ErrPasswordMismatch so that corrupted
	// records are surfaced internally instead of silently failing as non-match.
	ErrCorruptCredential = errors.New("stored credential is corrupt")

	// ErrAlreadyVerified is returned when verifying a user whose email address
	// has already been confirmed.
	ErrAlreadyVerified = errors.New("user is already verified")

	// ErrInvalidResetToken is returned when a password reset token no longer
	// matches the account state, e.g. after the password was changed.
	ErrInvalidResetToken = errors.New("invalid reset token")

	// ErrInvalidVerifyToken is returned when a verification token no longer
	// matches the account state, e.g. after the email was changed.
	ErrInvalidVerifyToken = errors.New("invalid verification token")
)
