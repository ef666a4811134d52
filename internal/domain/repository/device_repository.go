package repository

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository persists the devices registered under an account.
type DeviceRepository interface {
	// CreateDevice registers a device for a user. Registering the same
	// (user, device) pair again is a no-op.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// ListDeviceIDs returns the device identifiers registered for a user.
	ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}
