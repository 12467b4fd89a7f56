// Package tokenstore provides a Redis-backed access token repository.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/token"
)

// TokenRedis implements token.Repository using Redis. Records expire via
// Redis TTL, so the sweep is a no-op for this backend; the strategy's lazy
// expiry check still applies on top.
type TokenRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Compile-time check to ensure TokenRedis implements token.Repository.
var _ token.Repository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance. The TTL should match the
// token lifetime so Redis reaps records shortly after they stop validating.
func NewTokenRedis(client *redis.Client, prefix string, ttl time.Duration) *TokenRedis {
	return &TokenRedis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// tokenKey returns the Redis key for a token value.
func (r *TokenRedis) tokenKey(value string) string {
	return fmt.Sprintf("%s:%s", r.prefix, value)
}

// Create persists a new access token. SET NX guarantees the insert aborts on
// a duplicate token value instead of overwriting another user's record.
func (r *TokenRedis) Create(ctx context.Context, t *entity.AccessToken) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.tokenKey(t.Token), data, r.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return token.ErrDuplicateToken
	}
	return nil
}

// FindByToken retrieves a token record by its value.
func (r *TokenRedis) FindByToken(ctx context.Context, value string) (*entity.AccessToken, error) {
	data, err := r.client.Get(ctx, r.tokenKey(value)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, token.ErrTokenNotFound
		}
		return nil, err
	}

	var record entity.AccessToken
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &record, nil
}

// Delete removes a token record, revoking it immediately.
func (r *TokenRedis) Delete(ctx context.Context, value string) error {
	deleted, err := r.client.Del(ctx, r.tokenKey(value)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return token.ErrTokenNotFound
	}
	return nil
}

// DeleteExpired is a no-op: Redis reaps expired records via TTL.
func (r *TokenRedis) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	return 0, nil
}
