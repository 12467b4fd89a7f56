package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// accessAudience is the audience claim carried by access tokens. Tokens
// issued for other purposes (reset, verify) use different audiences and
// secrets, so one token class can never validate as another.
const accessAudience = "auth:access"

// JWTStrategy implements usecase.TokenStrategy with stateless signed tokens.
// No storage is required; revocation before natural expiry is not possible.
type JWTStrategy struct {
	secret   []byte
	lifetime time.Duration
}

// Compile-time check to ensure JWTStrategy implements TokenStrategy.
var _ usecase.TokenStrategy = (*JWTStrategy)(nil)

// NewJWTStrategy creates a JWT strategy with the provided signing secret and
// token lifetime.
func NewJWTStrategy(secret string, lifetime time.Duration) *JWTStrategy {
	return &JWTStrategy{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue creates a signed HS256 token encoding the user identity and expiry.
func (s *JWTStrategy) Issue(ctx context.Context, user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"aud": accessAudience,
		"iat": now.Unix(),
		"exp": now.Add(s.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry and decodes the user ID.
// Any ambiguity (bad signature, wrong algorithm, missing claims) resolves to
// ErrTokenMalformed: validation fails closed.
func (s *JWTStrategy) Validate(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC signatures are accepted.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithAudience(accessAudience), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenMalformed
	}
	if !token.Valid {
		return uuid.Nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrTokenMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrTokenMalformed
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}
	return userID, nil
}

// Revoke is a no-op: a stateless token stays valid until it expires.
// Early revocation would require a denylist, which this strategy does not keep.
func (s *JWTStrategy) Revoke(ctx context.Context, token string) error {
	return nil
}

// Lifetime returns the fixed token lifetime applied at issuance.
func (s *JWTStrategy) Lifetime() time.Duration {
	return s.lifetime
}
