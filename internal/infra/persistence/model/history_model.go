package model

import (
	"time"

	"github.com/google/uuid"
)

// HistorySongModel mirrors the append-only 'history_songs' table. Rows are
// written once per non-nil play-status update and never touched again.
type HistorySongModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SongID       string    `gorm:"type:varchar(255);not null"`
	PlayedAtTime time.Time `gorm:"not null;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (HistorySongModel) TableName() string {
	return "history_songs"
}
