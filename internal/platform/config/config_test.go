package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "AUTH_STRATEGY", "AUTH_TRANSPORT",
		"JWT_SECRET", "RESET_SECRET", "VERIFY_SECRET",
		"TOKEN_LIFETIME_SECONDS", "AUTH_COOKIE_NAME", "COOKIE_SECURE",
		"LOGIN_RATE_LIMIT", "LOGIN_RATE_WINDOW_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("unexpected port: %q", cfg.Port)
	}
	if cfg.Strategy != StrategyJWT {
		t.Errorf("unexpected strategy: %q", cfg.Strategy)
	}
	if cfg.Transport != TransportBearer {
		t.Errorf("unexpected transport: %q", cfg.Transport)
	}
	if cfg.TokenLifetime != time.Hour {
		t.Errorf("unexpected token lifetime: %v", cfg.TokenLifetime)
	}
	if cfg.CookieName != "auth_token" {
		t.Errorf("unexpected cookie name: %q", cfg.CookieName)
	}
	if !cfg.CookieSecure {
		t.Error("cookie secure should default to true")
	}
	if cfg.LoginRateLimit != 10 {
		t.Errorf("unexpected rate limit: %d", cfg.LoginRateLimit)
	}
	if cfg.LoginRateWindow != time.Minute {
		t.Errorf("unexpected rate window: %v", cfg.LoginRateWindow)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AUTH_STRATEGY", StrategyDatabase)
	t.Setenv("AUTH_TRANSPORT", TransportCookie)
	t.Setenv("JWT_SECRET", "s1")
	t.Setenv("RESET_SECRET", "s2")
	t.Setenv("VERIFY_SECRET", "s3")
	t.Setenv("TOKEN_LIFETIME_SECONDS", "120")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("LOGIN_RATE_LIMIT", "5")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("unexpected port: %q", cfg.Port)
	}
	if cfg.Strategy != StrategyDatabase {
		t.Errorf("unexpected strategy: %q", cfg.Strategy)
	}
	if cfg.Transport != TransportCookie {
		t.Errorf("unexpected transport: %q", cfg.Transport)
	}
	if cfg.JWTSecret != "s1" || cfg.ResetSecret != "s2" || cfg.VerifySecret != "s3" {
		t.Error("secrets not loaded")
	}
	if cfg.TokenLifetime != 2*time.Minute {
		t.Errorf("unexpected token lifetime: %v", cfg.TokenLifetime)
	}
	if cfg.CookieSecure {
		t.Error("cookie secure should be overridable")
	}
	if cfg.LoginRateLimit != 5 {
		t.Errorf("unexpected rate limit: %d", cfg.LoginRateLimit)
	}
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("TOKEN_LIFETIME_SECONDS", "not-a-number")
	t.Setenv("COOKIE_SECURE", "not-a-bool")

	cfg := Load()

	if cfg.TokenLifetime != time.Hour {
		t.Errorf("unexpected token lifetime: %v", cfg.TokenLifetime)
	}
	if !cfg.CookieSecure {
		t.Error("cookie secure should fall back to true")
	}
}
