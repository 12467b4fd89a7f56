package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/usecase"
)

// Audiences for single-purpose tokens. Each purpose also uses its own
// signing secret, so a reset token can never validate as a verification
// token or as an access token.
const (
	ResetAudience  = "auth:reset"
	VerifyAudience = "auth:verify"
)

// PurposeIssuer implements usecase.PurposeTokens with signed HS256 tokens
// carrying an opaque payload claim. The payload binds the token to account
// state (password hash fingerprint, email) so state changes invalidate
// outstanding tokens.
type PurposeIssuer struct {
	secret   []byte
	audience string
	lifetime time.Duration
}

// Compile-time check to ensure PurposeIssuer implements PurposeTokens.
var _ usecase.PurposeTokens = (*PurposeIssuer)(nil)

// NewPurposeIssuer creates an issuer for one token purpose. The secret must
// be distinct per purpose.
func NewPurposeIssuer(secret, audience string, lifetime time.Duration) *PurposeIssuer {
	return &PurposeIssuer{
		secret:   []byte(secret),
		audience: audience,
		lifetime: lifetime,
	}
}

// Issue creates a signed single-purpose token for the user.
func (p *PurposeIssuer) Issue(userID uuid.UUID, payload string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID.String(),
		"aud":     p.audience,
		"iat":     now.Unix(),
		"exp":     now.Add(p.lifetime).Unix(),
		"payload": payload,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature, audience and expiry, and returns the user ID
// and payload the token was issued with.
func (p *PurposeIssuer) Validate(tokenStr string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithAudience(p.audience), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", ErrTokenExpired
		}
		return uuid.Nil, "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrTokenMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", ErrTokenMalformed
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrTokenMalformed
	}
	payload, ok := claims["payload"].(string)
	if !ok {
		return uuid.Nil, "", ErrTokenMalformed
	}
	return userID, payload, nil
}
