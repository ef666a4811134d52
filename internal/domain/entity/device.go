package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a device identifier registered under an account, used by the
// external API layer to address a user's clients.
type UserDevice struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DeviceID  string
	Platform  string
	CreatedAt time.Time
}
