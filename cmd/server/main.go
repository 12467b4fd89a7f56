package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/di"
	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	infradb "auth_backend/internal/platform/db"
	"auth_backend/internal/platform/hash"
	"auth_backend/internal/platform/middleware"
	infraredis "auth_backend/internal/platform/redis"
	"auth_backend/internal/platform/token"
	"auth_backend/internal/shared/ratelimiter"
)

func main() {
	cfg := config.Load()

	// Secrets check (development warning)
	if cfg.JWTSecret == "" || cfg.ResetSecret == "" || cfg.VerifySecret == "" {
		log.Println("[WARN] JWT_SECRET, RESET_SECRET or VERIFY_SECRET is not set. Set strong distinct secrets in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis backs the opaque token store; the JWT strategy never needs it.
	var rdb *redisv9.Client
	if cfg.Strategy == config.StrategyDatabase {
		if tmp, err := infraredis.NewRedisClient(); err != nil {
			log.Println("[WARN] Redis unavailable. Falling back to the Postgres token store.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	tokenRepo := di.NewTokenRepository(rdb, db, cfg)

	// Strategy and transport, selected by configuration
	strategy := di.NewTokenStrategy(cfg, tokenRepo)
	tr := di.NewTransport(cfg)

	// Usecase
	hasher := hash.NewBcryptHasher(0)
	resetTokens := token.NewPurposeIssuer(cfg.ResetSecret, token.ResetAudience, cfg.TokenLifetime)
	verifyTokens := token.NewPurposeIssuer(cfg.VerifySecret, token.VerifyAudience, cfg.TokenLifetime)
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, strategy, resetTokens, verifyTokens)
	userUC := authusecase.NewUserUsecase(userRepo, hasher)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, tr)
	userH := authhandler.NewUserHandler(userUC)

	// Middleware
	limiter := ratelimiter.NewLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	mw := router.Middlewares{
		AuthRequired:     middleware.AuthRequired(strategy, tr),
		RequireSuperuser: middleware.RequireSuperuser(userRepo),
		LoginRateLimit:   middleware.RateLimit(limiter),
	}

	r := router.NewRouter(authH, userH, mw)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
