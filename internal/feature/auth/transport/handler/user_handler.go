package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/middleware"
)

// UserUsecase defines the usecases for profile and account management.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// Profile returns the user record for an authenticated identity.
	Profile(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// UpdateProfile changes the user's own email and/or password.
	UpdateProfile(ctx context.Context, id uuid.UUID, email, password *string) (*entity.User, error)
	// Get returns a user by ID for administrative access.
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// UpdateFlags applies an administrative flag change.
	UpdateFlags(ctx context.Context, id uuid.UUID, active, superuser, verified *bool) (*entity.User, error)
}

// UserHandler handles HTTP requests for user profile and admin operations.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles the authenticated profile endpoint.
// A valid token whose user no longer resolves gets the same 401 as a bad token.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe handles the self-service profile update endpoint.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	var email *string
	if req.Email != nil {
		s := string(*req.Email)
		email = &s
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, email, req.Password)
	if err != nil {
		slog.Warn("profile update failed", "error", err, "user_id", userID)
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "update failed"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Get handles the administrative user lookup endpoint.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
			return
		}
		slog.Error("user lookup failed", "error", err, "target_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateFlags handles the administrative flag update endpoint.
// Deactivation (active=false) is the soft-delete path; users are never removed.
func (h *UserHandler) UpdateFlags(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	var req api.UpdateUserFlagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	user, err := h.users.UpdateFlags(c.Request.Context(), id, req.Active, req.Superuser, req.Verified)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
			return
		}
		slog.Error("flag update failed", "error", err, "target_id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user flags updated", "target_id", id, "active", user.Active,
		"superuser", user.Superuser, "verified", user.Verified)
	c.JSON(http.StatusOK, toUserResponse(user))
}

// toUserResponse maps a user entity to its API representation.
// The password hash is never part of a response.
func toUserResponse(u *entity.User) api.UserResponse {
	return api.UserResponse{
		Id:        u.ID,
		Email:     openapi_types.Email(u.Email),
		Active:    u.Active,
		Superuser: u.Superuser,
		Verified:  u.Verified,
	}
}
