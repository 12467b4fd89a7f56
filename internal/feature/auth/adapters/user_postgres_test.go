package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// setupTestDB opens an in-memory SQLite database and migrates the schema.
// TranslateError makes gorm surface duplicate keys as gorm.ErrDuplicatedKey,
// matching what the Postgres error code check covers in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &AccessTokenModel{}))
	return db
}

func newTestUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Active:       true,
	}
}

func TestUserPostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("creates a user", func(t *testing.T) {
		u := newTestUser("alice@example.com")
		require.NoError(t, repo.Create(ctx, u))

		found, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
		assert.True(t, found.Active)
		assert.False(t, found.Superuser)
	})

	t.Run("duplicate email", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newTestUser("bob@example.com")))

		err := repo.Create(ctx, newTestUser("bob@example.com"))
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserPostgres_Find(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	u := newTestUser("carol@example.com")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "carol@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, found.ID)
	})

	t.Run("by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "carol@example.com", found.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("persists changes", func(t *testing.T) {
		u := newTestUser("dave@example.com")
		require.NoError(t, repo.Create(ctx, u))

		u.Email = "dave2@example.com"
		u.PasswordHash = "$2a$10$replacedreplacedreplaced"
		require.NoError(t, repo.Update(ctx, u))

		found, err := repo.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "dave2@example.com", found.Email)
		assert.Equal(t, "$2a$10$replacedreplacedreplaced", found.PasswordHash)
	})

	t.Run("email collision", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newTestUser("erin@example.com")))
		u := newTestUser("frank@example.com")
		require.NoError(t, repo.Create(ctx, u))

		u.Email = "erin@example.com"
		err := repo.Update(ctx, u)
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserPostgres_UpdateFlags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)
	ctx := context.Background()

	t.Run("replaces flags", func(t *testing.T) {
		u := newTestUser("grace@example.com")
		require.NoError(t, repo.Create(ctx, u))

		updated, err := repo.UpdateFlags(ctx, u.ID, entity.Flags{
			Active:    true,
			Superuser: true,
			Verified:  true,
		})
		require.NoError(t, err)
		assert.True(t, updated.Superuser)
		assert.True(t, updated.Verified)

		// Clearing flags must stick as well, not just setting them.
		updated, err = repo.UpdateFlags(ctx, u.ID, entity.Flags{})
		require.NoError(t, err)
		assert.False(t, updated.Active)
		assert.False(t, updated.Superuser)
		assert.False(t, updated.Verified)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.UpdateFlags(ctx, uuid.New(), entity.Flags{Active: true})
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
