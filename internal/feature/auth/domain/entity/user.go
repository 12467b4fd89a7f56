// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user in the system.
// It contains authentication credentials and account flags.
type User struct {
	// ID is the unique identifier for the user. It is assigned at
	// registration and never changes afterwards.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never store plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// Active indicates whether the account may authenticate.
	// Users are deactivated instead of deleted.
	Active bool `gorm:"not null;default:true"`

	// Superuser grants access to administrative endpoints.
	Superuser bool `gorm:"not null;default:false"`

	// Verified indicates whether the email address has been confirmed.
	Verified bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// Flags holds the mutable account flags of a user.
type Flags struct {
	Active    bool
	Superuser bool
	Verified  bool
}

// Flags returns the user's current account flags.
func (u *User) Flags() Flags {
	return Flags{Active: u.Active, Superuser: u.Superuser, Verified: u.Verified}
}
