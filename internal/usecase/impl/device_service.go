package impl

import (
	"context"
	"log/slog"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/reqctx"
	"mixtape/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return reqctx.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice records a device for the user. Registering the same device
// twice is a no-op.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Registering device", slog.Any("userID", input.UserID), slog.String("deviceID", input.DeviceID))

	device := &entity.UserDevice{
		UserID:   input.UserID,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to register device")
	}

	return nil
}

// ListDevices returns the device identifiers registered for the user.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]string, error) {
	deviceIDs, err := srv.deviceRepo.ListDeviceIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	if deviceIDs == nil {
		deviceIDs = []string{}
	}

	return deviceIDs, nil
}
