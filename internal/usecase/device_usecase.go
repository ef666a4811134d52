package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterDeviceInput defines the data required to register a client device.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	DeviceID string `validate:"required"`
	Platform string `validate:"omitempty,oneof=ios android web"`
}

// DeviceUsecase covers the devices registered under an account.
type DeviceUsecase interface {
	// RegisterDevice records a device for the user. Registering the same
	// device twice is a no-op.
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) error

	// ListDevices returns the device identifiers registered for the user.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]string, error)
}
