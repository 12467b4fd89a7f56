package transport

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
)

const bearerPrefix = "Bearer "

// Bearer transports tokens in the Authorization header. Issued tokens are
// returned in the response body; there is no client-side state to clear.
type Bearer struct{}

// Compile-time check to ensure Bearer implements Transport.
var _ Transport = (*Bearer)(nil)

// NewBearer creates a bearer header transport.
func NewBearer() *Bearer {
	return &Bearer{}
}

// Extract reads the token from the Authorization header.
func (t *Bearer) Extract(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(auth, bearerPrefix)
	if token == "" {
		return "", false
	}
	return token, true
}

// Attach returns the issued token in the response body.
func (t *Bearer) Attach(c *gin.Context, token string) {
	c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Clear responds with 204; the client discards the token itself.
func (t *Bearer) Clear(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
