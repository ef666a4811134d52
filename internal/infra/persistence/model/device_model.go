package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// The composite unique index makes device registration idempotent per user.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_device"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_device"`
	Platform  string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
