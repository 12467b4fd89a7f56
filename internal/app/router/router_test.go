package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"auth_backend/internal/feature/auth/domain/entity"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/middleware"
	"auth_backend/internal/platform/token"
	"auth_backend/internal/platform/transport"
	"auth_backend/internal/shared/ratelimiter"
)

// stubAuthUsecase fails every operation; the route table test only cares
// about status codes from the middleware chain, not handler outcomes.
type stubAuthUsecase struct{}

func (stubAuthUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	return nil, usecase.ErrEmailAlreadyExists
}
func (stubAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	return "", usecase.ErrInvalidCredentials
}
func (stubAuthUsecase) Logout(ctx context.Context, token string) error { return nil }
func (stubAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	return nil
}
func (stubAuthUsecase) ResetPassword(ctx context.Context, token, password string) error {
	return usecase.ErrInvalidResetToken
}
func (stubAuthUsecase) RequestVerify(ctx context.Context, userID uuid.UUID) error { return nil }
func (stubAuthUsecase) Verify(ctx context.Context, token string) error {
	return usecase.ErrInvalidVerifyToken
}

type stubUserUsecase struct{}

func (stubUserUsecase) Profile(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}
func (stubUserUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, email, password *string) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}
func (stubUserUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}
func (stubUserUsecase) UpdateFlags(ctx context.Context, id uuid.UUID, active, superuser, verified *bool) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}

type rejectAllValidator struct{}

func (rejectAllValidator) Validate(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	return uuid.Nil, token.ErrTokenMalformed
}

type emptyUserFinder struct{}

func (emptyUserFinder) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return nil, usecase.ErrUserNotFound
}

// TestNewRouter registers the full route table (gin panics on conflicting
// wildcards at registration time) and checks the middleware chain gates each
// group as expected for an anonymous caller.
func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tr := transport.NewBearer()
	r := NewRouter(
		authhandler.NewAuthHandler(stubAuthUsecase{}, tr),
		authhandler.NewUserHandler(stubUserUsecase{}),
		Middlewares{
			AuthRequired:     middleware.AuthRequired(rejectAllValidator{}, tr),
			RequireSuperuser: middleware.RequireSuperuser(emptyUserFinder{}),
			LoginRateLimit:   middleware.RateLimit(ratelimiter.NewLimiter(100, time.Minute)),
		},
	)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodPost, "/auth/register", http.StatusBadRequest},
		{http.MethodPost, "/auth/login", http.StatusBadRequest},
		{http.MethodPost, "/auth/forgot-password", http.StatusBadRequest},
		{http.MethodPost, "/auth/reset-password", http.StatusBadRequest},
		{http.MethodPost, "/auth/verify", http.StatusBadRequest},
		{http.MethodPost, "/auth/logout", http.StatusUnauthorized},
		{http.MethodPost, "/auth/request-verify", http.StatusUnauthorized},
		{http.MethodGet, "/users/me", http.StatusUnauthorized},
		{http.MethodPatch, "/users/me", http.StatusUnauthorized},
		{http.MethodGet, "/admin/users/" + uuid.New().String(), http.StatusUnauthorized},
		{http.MethodPatch, "/admin/users/" + uuid.New().String(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
