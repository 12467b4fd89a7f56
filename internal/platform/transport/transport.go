// Package transport implements the token transports: bearer header and cookie.
package transport

import "github.com/gin-gonic/gin"

// Transport moves access tokens between HTTP messages and the token layer.
// Extract pulls a presented token out of the request; Attach delivers a
// freshly issued token in the login response; Clear removes any client-held
// state on logout.
type Transport interface {
	Extract(c *gin.Context) (string, bool)
	Attach(c *gin.Context, token string)
	Clear(c *gin.Context)
}
