package model

import (
	"time"

	"github.com/google/uuid"
)

// SongLikeModel mirrors the 'song_likes' table. There is deliberately no
// uniqueness constraint on (song_id, user_id): duplicate like events are
// part of the observable behavior.
type SongLikeModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	SongID string    `gorm:"type:varchar(255);not null;index"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SongLikeModel) TableName() string {
	return "song_likes"
}

// RecommendationModel mirrors the 'recommendations' table.
type RecommendationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null"`
	SongID     string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecommendationModel) TableName() string {
	return "recommendations"
}
