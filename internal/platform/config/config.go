// Package config loads service configuration from environment variables.
// Values are read once here and passed to constructors explicitly; no other
// package reads authentication settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Strategy selects how access tokens are issued and validated.
const (
	// StrategyJWT issues stateless signed tokens. No storage, no early revocation.
	StrategyJWT = "jwt"
	// StrategyDatabase issues opaque tokens recorded server-side. Revocation
	// is immediate.
	StrategyDatabase = "database"
)

// Transport selects how tokens move between client and server.
const (
	// TransportBearer reads and returns tokens via the Authorization header.
	TransportBearer = "bearer"
	// TransportCookie stores the token in an HttpOnly cookie.
	TransportCookie = "cookie"
)

// Config holds the authentication service configuration.
type Config struct {
	Port      string // HTTP listen port
	Strategy  string // StrategyJWT or StrategyDatabase
	Transport string // TransportBearer or TransportCookie

	// Distinct secrets per token purpose. A single shared secret would let
	// one token class validate as another.
	JWTSecret    string
	ResetSecret  string
	VerifySecret string

	TokenLifetime time.Duration // applied to every issued token

	CookieName   string // cookie transport only
	CookieSecure bool   // must be true in production

	LoginRateLimit  int           // allowed attempts per window per client
	LoginRateWindow time.Duration // rate limit window
}

// Load reads the configuration from environment variables, applying defaults
// for everything except the secrets.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		Strategy:        getenv("AUTH_STRATEGY", StrategyJWT),
		Transport:       getenv("AUTH_TRANSPORT", TransportBearer),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		ResetSecret:     os.Getenv("RESET_SECRET"),
		VerifySecret:    os.Getenv("VERIFY_SECRET"),
		TokenLifetime:   time.Duration(getenvInt("TOKEN_LIFETIME_SECONDS", 3600)) * time.Second,
		CookieName:      getenv("AUTH_COOKIE_NAME", "auth_token"),
		CookieSecure:    getenvBool("COOKIE_SECURE", true),
		LoginRateLimit:  getenvInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow: time.Duration(getenvInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
