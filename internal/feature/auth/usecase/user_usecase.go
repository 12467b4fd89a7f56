package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
)

// userUsecase implements profile and account management logic.
type userUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository, hasher PasswordHasher) *userUsecase {
	return &userUsecase{users: users, hasher: hasher}
}

// Profile returns the user record for an authenticated identity.
func (u *userUsecase) Profile(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdateProfile changes the user's own email and/or password.
// Nil fields are left untouched. An email collision fails with
// ErrEmailAlreadyExists from the storage constraint.
func (u *userUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, email, password *string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if email != nil {
		normalized := normalizeEmail(*email)
		if normalized != user.Email {
			user.Email = normalized
			// An unverified address until confirmed again.
			user.Verified = false
		}
	}
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
		hashed, err := u.hasher.Hash(*password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns a user by ID for administrative access.
func (u *userUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// UpdateFlags applies an administrative flag change. Nil fields keep their
// current value. Deactivation is the only removal path: users are never
// physically deleted.
func (u *userUsecase) UpdateFlags(ctx context.Context, id uuid.UUID, active, superuser, verified *bool) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flags := user.Flags()
	if active != nil {
		flags.Active = *active
	}
	if superuser != nil {
		flags.Superuser = *superuser
	}
	if verified != nil {
		flags.Verified = *verified
	}

	return u.users.UpdateFlags(ctx, id, flags)
}
