// Package middleware provides the authentication middleware for gin routes.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/transport"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID = "userID"
	ContextToken  = "accessToken"
)

// TokenValidator resolves a presented token to a user identity.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (token strategies).
type TokenValidator interface {
	Validate(ctx context.Context, token string) (uuid.UUID, error)
}

// UserFinder loads a user record for authorization checks.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// AuthRequired returns a gin middleware that extracts a token via the given
// transport, validates it and stores the resolved identity in the request
// context. Every failure (missing, malformed, expired, revoked) results in
// the same 401 so callers learn nothing about which check rejected them.
// Identity is request-scoped; nothing is cached across requests.
func AuthRequired(validator TokenValidator, tr transport.Transport) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tr.Extract(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
			return
		}

		userID, err := validator.Validate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireSuperuser returns a gin middleware that restricts a route to active
// superusers. It must run after AuthRequired.
func RequireSuperuser(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || !user.Active || !user.Superuser {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user ID stored by AuthRequired.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Token returns the raw access token stored by AuthRequired.
func Token(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextToken)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
