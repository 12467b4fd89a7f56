// Package di wires configuration-selected implementations together.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/adapters"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	"auth_backend/internal/platform/token"
	"auth_backend/internal/platform/tokenstore"
	"auth_backend/internal/platform/transport"
)

// NewTokenRepository creates a token.Repository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to Postgres.
func NewTokenRepository(rdb *redis.Client, db *gorm.DB, cfg config.Config) token.Repository {
	if rdb != nil {
		return tokenstore.NewTokenRedis(rdb, "access_token", cfg.TokenLifetime)
	}
	return adapters.NewTokenPostgres(db)
}

// NewTokenStrategy creates the configured token strategy.
// The database strategy records opaque tokens in repo; the default JWT
// strategy is stateless and ignores repo entirely.
func NewTokenStrategy(cfg config.Config, repo token.Repository) usecase.TokenStrategy {
	if cfg.Strategy == config.StrategyDatabase {
		return token.NewOpaqueStrategy(repo, cfg.TokenLifetime)
	}
	return token.NewJWTStrategy(cfg.JWTSecret, cfg.TokenLifetime)
}

// NewTransport creates the configured token transport.
func NewTransport(cfg config.Config) transport.Transport {
	if cfg.Transport == config.TransportCookie {
		return transport.NewCookie(cfg.CookieName, cfg.TokenLifetime, cfg.CookieSecure)
	}
	return transport.NewBearer()
}
