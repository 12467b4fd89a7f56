package adapters

import (
	"time"

	"github.com/google/uuid"

	"auth_backend/internal/feature/auth/domain/entity"
)

// AccessTokenModel is the GORM model for the access_tokens table.
// The token value is the primary key; the user_id index plus the cascade
// constraint make deleting a user invalidate all of its tokens.
type AccessTokenModel struct {
	Token     string      `gorm:"primaryKey;size:64"`
	UserID    uuid.UUID   `gorm:"type:uuid;index;not null"`
	User      entity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "access_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *AccessTokenModel) ToEntity() *entity.AccessToken {
	return &entity.AccessToken{
		Token:     m.Token,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// AccessTokenModelFromEntity converts a domain entity to a GORM model.
func AccessTokenModelFromEntity(t *entity.AccessToken) *AccessTokenModel {
	return &AccessTokenModel{
		Token:     t.Token,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}
