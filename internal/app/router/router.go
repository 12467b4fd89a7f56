// Package router builds the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/http/handler"
)

// Middlewares holds the route-level middleware applied by NewRouter.
type Middlewares struct {
	// AuthRequired validates the access token and resolves the identity.
	AuthRequired gin.HandlerFunc
	// RequireSuperuser restricts admin routes; runs after AuthRequired.
	RequireSuperuser gin.HandlerFunc
	// LoginRateLimit throttles credential-guessing surfaces.
	LoginRateLimit gin.HandlerFunc
}

func NewRouter(authHandler *authhandler.AuthHandler, userHandler *authhandler.UserHandler,
	mw Middlewares) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	// No authentication required
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", mw.LoginRateLimit, authHandler.Login)
	auth.POST("/forgot-password", mw.LoginRateLimit, authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.POST("/verify", authHandler.Verify)

	// Authentication required
	authed := r.Group("/", mw.AuthRequired)
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.POST("/auth/request-verify", authHandler.RequestVerify)
		authed.GET("/users/me", userHandler.Me)
		authed.PATCH("/users/me", userHandler.UpdateMe)
	}

	// Superuser only
	admin := r.Group("/admin/users", mw.AuthRequired, mw.RequireSuperuser)
	{
		admin.GET("/:id", userHandler.Get)
		admin.PATCH("/:id", userHandler.UpdateFlags)
	}

	return r
}
