package transport

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie transports tokens in an HttpOnly cookie. The cookie max-age matches
// the token lifetime so the client stops presenting tokens that would be
// rejected anyway.
type Cookie struct {
	name   string
	maxAge int
	secure bool
}

// Compile-time check to ensure Cookie implements Transport.
var _ Transport = (*Cookie)(nil)

// NewCookie creates a cookie transport. secure must be true in production so
// the cookie is only sent over TLS.
func NewCookie(name string, lifetime time.Duration, secure bool) *Cookie {
	return &Cookie{
		name:   name,
		maxAge: int(lifetime.Seconds()),
		secure: secure,
	}
}

// Extract reads the token from the named cookie.
func (t *Cookie) Extract(c *gin.Context) (string, bool) {
	token, err := c.Cookie(t.name)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Attach sets the token cookie on the response. The body stays empty: the
// browser holds the credential, not the caller.
func (t *Cookie) Attach(c *gin.Context, token string) {
	c.SetCookie(t.name, token, t.maxAge, "/", "", t.secure, true)
	c.Status(http.StatusNoContent)
}

// Clear expires the cookie on the client.
func (t *Cookie) Clear(c *gin.Context) {
	c.SetCookie(t.name, "", -1, "/", "", t.secure, true)
	c.Status(http.StatusNoContent)
}
