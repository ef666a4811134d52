package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowModel mirrors the 'following_users' table. The composite primary key
// is the uniqueness backstop that makes follow idempotent: duplicate edges
// cannot exist, inserts on conflict are no-ops.
type FollowModel struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowingUserID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "following_users"
}
