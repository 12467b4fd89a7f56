package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/token"
)

// tokenPostgres is a Postgres implementation of the token.Repository interface.
type tokenPostgres struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenPostgres implements token.Repository.
var _ token.Repository = (*tokenPostgres)(nil)

// NewTokenPostgres creates a new instance of tokenPostgres.
func NewTokenPostgres(db *gorm.DB) *tokenPostgres {
	return &tokenPostgres{db: db}
}

// Create persists a new access token.
// A duplicate token value returns token.ErrDuplicateToken so issuance aborts
// instead of silently reusing another record.
func (r *tokenPostgres) Create(ctx context.Context, t *entity.AccessToken) error {
	model := AccessTokenModelFromEntity(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return token.ErrDuplicateToken
		}
		return err
	}
	return nil
}

// FindByToken retrieves a token record by its value.
func (r *tokenPostgres) FindByToken(ctx context.Context, value string) (*entity.AccessToken, error) {
	var model AccessTokenModel
	if err := r.db.WithContext(ctx).Where("token = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, token.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Delete removes a token record by its value, revoking it immediately.
func (r *tokenPostgres) Delete(ctx context.Context, value string) error {
	result := r.db.WithContext(ctx).
		Where("token = ?", value).
		Delete(&AccessTokenModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return token.ErrTokenNotFound
	}
	return nil
}

// DeleteExpired removes all tokens created before the cutoff.
func (r *tokenPostgres) DeleteExpired(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", olderThan).
		Delete(&AccessTokenModel{})
	return result.RowsAffected, result.Error
}
