package auth

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset holds at most one pending reset per user. Only the SHA-256 of
// the token is stored.
type PasswordReset struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	TokenHash string    `gorm:"column:token_hash;type:char(64);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
