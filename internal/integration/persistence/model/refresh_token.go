// Package model contains GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel represents a stored refresh token in the database.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token     string    `gorm:"uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
