package impl

import (
	"context"
	"testing"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	mockRepo "mixtape/internal/mocks/repository"
	"mixtape/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "device-123", device.DeviceID)
			assert.Equal(t, "ios", device.Platform)
		}).
		Return(nil)

	err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		DeviceID: "device-123",
		Platform: "ios",
	})

	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_MissingDeviceID(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		DeviceID: "",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.deviceRepo.AssertNotCalled(t, "CreateDevice", mock.Anything, mock.Anything)
}

func TestDeviceService_RegisterDevice_UnknownUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrUserNotFound)

	err := fx.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		UserID:   userID,
		DeviceID: "device-123",
		Platform: "android",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceIDs := []string{"device-2", "device-1"}

	fx.deviceRepo.EXPECT().
		ListDeviceIDs(ctx, userID).
		Return(deviceIDs, nil)

	got, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, deviceIDs, got)
}

func TestDeviceService_ListDevices_Empty(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		ListDeviceIDs(ctx, userID).
		Return(nil, nil)

	got, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
