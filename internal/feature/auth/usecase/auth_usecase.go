package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum number of password characters.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Update persists changes to an existing user.
	// It returns ErrEmailAlreadyExists when an email change collides.
	Update(ctx context.Context, user *entity.User) error

	// UpdateFlags replaces the account flags of a user and returns the
	// updated record. It returns ErrUserNotFound when no row matches.
	UpdateFlags(ctx context.Context, id uuid.UUID, flags entity.Flags) (*entity.User, error)
}

// PasswordHasher abstracts one-way password hashing.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from the plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash.
	// It returns ErrPasswordMismatch on mismatch and ErrCorruptCredential
	// when the stored hash cannot be parsed.
	Verify(plaintext, hash string) error
}

// TokenStrategy abstracts access token issuance and validation.
// Two implementations exist: a stateless signed token and an opaque
// database-backed token, selected by configuration.
type TokenStrategy interface {
	// Issue creates a new access token for the user.
	Issue(ctx context.Context, user *entity.User) (string, error)

	// Validate resolves a presented token to the owning user ID.
	Validate(ctx context.Context, token string) (uuid.UUID, error)

	// Revoke invalidates a token before its natural expiry where the
	// strategy supports it.
	Revoke(ctx context.Context, token string) error

	// Lifetime returns the fixed token lifetime applied at issuance.
	Lifetime() time.Duration
}

// PurposeTokens issues and validates single-purpose tokens (password reset,
// email verification). The payload binds the token to server-side state so
// it is invalidated when that state changes.
type PurposeTokens interface {
	Issue(userID uuid.UUID, payload string) (string, error)
	Validate(token string) (userID uuid.UUID, payload string, err error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	hasher       PasswordHasher
	tokens       TokenStrategy
	resetTokens  PurposeTokens
	verifyTokens PurposeTokens
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenStrategy,
	resetTokens, verifyTokens PurposeTokens) *authUsecase {
	return &authUsecase{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		resetTokens:  resetTokens,
		verifyTokens: verifyTokens,
	}
}

// validatePassword checks whether the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// normalizeEmail lowercases the address so lookups and the uniqueness
// constraint are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// credentialFingerprint derives a stable fingerprint of the stored password
// hash. Reset tokens embed it so that changing the password invalidates every
// outstanding reset token.
func credentialFingerprint(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user with a hashed password.
// The returned user carries the generated ID and default flags.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(email),
		PasswordHash: hashed,
		Active:       true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// dummyHash is a bcrypt hash compared against when the user does not exist,
// so that login always performs exactly one hash comparison regardless of
// whether the email is known (timing attack mitigation).
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns a new access token on success.
// Unknown email, wrong password and deactivated accounts all fail with
// ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// Always verify the password, even for unknown users.
	verifyErr := u.hasher.Verify(password, passwordHash)
	if errors.Is(verifyErr, ErrCorruptCredential) {
		// Never downgrade a corrupt stored hash to a plain mismatch.
		return "", fmt.Errorf("verifying credential for %q: %w", email, ErrCorruptCredential)
	}

	if err != nil || verifyErr != nil || !user.Active {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.Issue(ctx, user)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to issue token: %w", tokenErr)
	}
	return token, nil
}

// Logout revokes the presented access token. For the stateless strategy
// revocation is a no-op; the transport layer still clears client state.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	return u.tokens.Revoke(ctx, token)
}

// ForgotPassword issues a password reset token for the given email address.
// It never reveals whether the address is registered: unknown or inactive
// accounts are skipped silently.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return err
	}
	if !user.Active {
		return nil
	}

	token, err := u.resetTokens.Issue(user.ID, credentialFingerprint(user.PasswordHash))
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	// No mailer is wired up; the token is handed to the delivery channel
	// via the log, mirroring the registration hooks it replaces.
	slog.Info("password reset requested", "user_id", user.ID, "reset_token", token)
	return nil
}

// ResetPassword sets a new password for the user identified by a reset token.
// Tokens issued before the last password change are rejected.
func (u *authUsecase) ResetPassword(ctx context.Context, token, password string) error {
	userID, fingerprint, err := u.resetTokens.Validate(token)
	if err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Active || fingerprint != credentialFingerprint(user.PasswordHash) {
		return ErrInvalidResetToken
	}

	if err := validatePassword(password); err != nil {
		return err
	}
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashed
	return u.users.Update(ctx, user)
}

// RequestVerify issues an email verification token for the user.
func (u *authUsecase) RequestVerify(ctx context.Context, userID uuid.UUID) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Verified {
		return ErrAlreadyVerified
	}

	token, err := u.verifyTokens.Issue(user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}

	slog.Info("email verification requested", "user_id", user.ID, "verify_token", token)
	return nil
}

// Verify marks the user's email address as confirmed. The token payload
// carries the email it was issued for, so a token becomes invalid when the
// user changes address in the meantime.
func (u *authUsecase) Verify(ctx context.Context, token string) error {
	userID, email, err := u.verifyTokens.Validate(token)
	if err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Email != email {
		return ErrInvalidVerifyToken
	}
	if user.Verified {
		return ErrAlreadyVerified
	}

	flags := user.Flags()
	flags.Verified = true
	_, err = u.users.UpdateFlags(ctx, user.ID, flags)
	return err
}
