package tokenstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/token"
)

func newTestToken(t *testing.T) (*entity.AccessToken, []byte) {
	t.Helper()
	record := &entity.AccessToken{
		Token:     "abc123",
		UserID:    uuid.New(),
		CreatedAt: time.Now().Truncate(time.Second),
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	return record, data
}

func TestTokenRedis_Create(t *testing.T) {
	t.Run("persists a token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)
		record, data := newTestToken(t)

		mock.ExpectSetNX("access_token:abc123", data, time.Hour).SetVal(true)

		err := repo.Create(context.Background(), record)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate token value", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)
		record, data := newTestToken(t)

		mock.ExpectSetNX("access_token:abc123", data, time.Hour).SetVal(false)

		err := repo.Create(context.Background(), record)
		assert.ErrorIs(t, err, token.ErrDuplicateToken)
	})
}

func TestTokenRedis_FindByToken(t *testing.T) {
	t.Run("existing token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)
		record, data := newTestToken(t)

		mock.ExpectGet("access_token:abc123").SetVal(string(data))

		found, err := repo.FindByToken(context.Background(), "abc123")
		require.NoError(t, err)
		assert.Equal(t, record.UserID, found.UserID)
		assert.True(t, record.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("missing token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)

		mock.ExpectGet("access_token:missing").RedisNil()

		_, err := repo.FindByToken(context.Background(), "missing")
		assert.ErrorIs(t, err, token.ErrTokenNotFound)
	})

	t.Run("corrupt record", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)

		mock.ExpectGet("access_token:abc123").SetVal("{not json")

		_, err := repo.FindByToken(context.Background(), "abc123")
		assert.Error(t, err)
	})
}

func TestTokenRedis_Delete(t *testing.T) {
	t.Run("removes the token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)

		mock.ExpectDel("access_token:abc123").SetVal(1)

		err := repo.Delete(context.Background(), "abc123")
		assert.NoError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		repo := NewTokenRedis(db, "access_token", time.Hour)

		mock.ExpectDel("access_token:missing").SetVal(0)

		err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, token.ErrTokenNotFound)
	})
}

func TestTokenRedis_DeleteExpired(t *testing.T) {
	db, _ := redismock.NewClientMock()
	repo := NewTokenRedis(db, "access_token", time.Hour)

	deleted, err := repo.DeleteExpired(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
