// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice registers a device for a user. The unique index on
// (user_id, device_id) plus ON CONFLICT DO NOTHING makes re-registration a no-op.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(deviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt

	return nil
}

// ListDeviceIDs returns the device identifiers registered for a user.
func (repo *deviceRepository) ListDeviceIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var deviceIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("device_id", &deviceIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list device ids")
	}

	return deviceIDs, nil
}

// --- Mapper Functions ---

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	deviceM := &model.UserDeviceModel{
		ID:       data.ID,
		UserID:   data.UserID,
		DeviceID: data.DeviceID,
		Platform: data.Platform,
	}
	if deviceM.ID == uuid.Nil {
		deviceM.ID = uuid.New()
	}

	return deviceM
}
