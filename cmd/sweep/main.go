// Command sweep deletes expired access tokens from the database.
// Expiry is normally enforced lazily at validation time; running this
// periodically bounds storage growth. The Redis token store expires records
// via TTL and does not need sweeping.
package main

import (
	"context"
	"log"
	"time"

	"auth_backend/internal/feature/auth/adapters"
	"auth_backend/internal/platform/config"
	infradb "auth_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()
	db := infradb.OpenDB()
	repo := adapters.NewTokenPostgres(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deleted, err := repo.DeleteExpired(ctx, time.Now().Add(-cfg.TokenLifetime))
	if err != nil {
		log.Fatal("failed to delete expired tokens:", err)
	}
	log.Printf("sweep ok: deleted %d expired tokens", deleted)
}
