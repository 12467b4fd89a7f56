// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/middleware"
	"auth_backend/internal/platform/token"
	"auth_backend/internal/platform/transport"
)

// AuthUsecase defines the usecases for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with the given email and password.
	Register(ctx context.Context, email, password string) (*entity.User, error)
	// Login authenticates a user and returns an access token on success.
	Login(ctx context.Context, email, password string) (string, error)
	// Logout revokes the presented access token.
	Logout(ctx context.Context, token string) error
	// ForgotPassword issues a password reset token without revealing whether
	// the email is registered.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword sets a new password via a reset token.
	ResetPassword(ctx context.Context, token, password string) error
	// RequestVerify issues an email verification token for the user.
	RequestVerify(ctx context.Context, userID uuid.UUID) error
	// Verify marks the user's email address as confirmed.
	Verify(ctx context.Context, token string) error
}

// AuthHandler handles HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and the configured token transport.
type AuthHandler struct {
	auth AuthUsecase
	tr   transport.Transport
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase, tr transport.Transport) *AuthHandler {
	return &AuthHandler{auth: auth, tr: tr}
}

// Register handles the user registration endpoint.
// - 400 on validation errors
// - 409 on duplicate email (generic message, no enumeration detail)
// - 201 with the created user on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "register failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles the user login endpoint. On success the issued token is
// delivered via the configured transport (response body or cookie).
// All credential failures produce the same generic 400.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	tokenStr, err := h.auth.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrCorruptCredential) {
			slog.Error("login hit corrupt credential", "error", err, "remote_addr", c.ClientIP())
		} else {
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		}
		// Uniform response regardless of the failing check.
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid email or password"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	h.tr.Attach(c, tokenStr)
}

// Logout handles the logout endpoint. Requires a valid token; revokes it
// (immediate for opaque tokens) and clears transport state.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenStr, ok := middleware.Token(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), tokenStr); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	h.tr.Clear(c)
}

// ForgotPassword handles the password reset request endpoint.
// It always responds 202 so the caller cannot probe for registered emails.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req api.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), string(req.Email)); err != nil {
		slog.Error("forgot-password failed", "error", err, "remote_addr", c.ClientIP())
	}
	c.JSON(http.StatusAccepted, api.MessageResponse{Message: "ok"})
}

// ResetPassword handles the password reset endpoint.
// Invalid, expired and stale tokens all produce the same generic 400.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req api.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		slog.Warn("reset-password failed", "error", err, "remote_addr", c.ClientIP())
		if isTokenError(err) || errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid or expired token"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("password reset completed", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// RequestVerify handles the email verification request endpoint.
// Requires authentication; always responds 202 on handled outcomes.
func (h *AuthHandler) RequestVerify(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.auth.RequestVerify(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrAlreadyVerified) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "already verified"})
			return
		}
		slog.Error("request-verify failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusAccepted, api.MessageResponse{Message: "ok"})
}

// Verify handles the email verification endpoint.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req api.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.auth.Verify(c.Request.Context(), req.Token); err != nil {
		slog.Warn("verify failed", "error", err, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "already verified"})
		case isTokenError(err) || errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid or expired token"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// isTokenError reports whether the error is any single-purpose token failure.
func isTokenError(err error) bool {
	return errors.Is(err, token.ErrTokenExpired) ||
		errors.Is(err, token.ErrTokenMalformed) ||
		errors.Is(err, usecase.ErrInvalidResetToken) ||
		errors.Is(err, usecase.ErrInvalidVerifyToken)
}
