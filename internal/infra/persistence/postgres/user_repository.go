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
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user entity together with its empty profile.
// GORM's Create with associations inserts into users and profiles within
// a single statement batch, so both rows share the account's UUID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordDigest string) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)
	userM.PasswordDigest = passwordDigest

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// ExistsByEmail reports whether an account with the given email exists.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email existence")
	}

	return count > 0, nil
}

// FindProfileByEmail retrieves the profile and the stored password digest for
// an email. The digest is returned out-of-band so it never lives on the entity.
func (repo *userRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", repository.ErrUserNotFound
		}

		return nil, "", errors.Wrap(err, "failed to find user by email")
	}

	return toProfileDomain(userM.Profile, userM.Email), userM.PasswordDigest, nil
}

// FindProfileByID retrieves a profile by user id.
func (repo *userRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toProfileDomain(userM.Profile, userM.Email), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
// The email comes from the owning users row.
func toProfileDomain(data *model.ProfileModel, email string) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:         data.UserID,
		Email:          email,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Avatar:         data.Avatar,
		Likes:          data.Likes,
		CurrentPlaying: data.CurrentPlaying,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// The password digest is not part of the entity and is set by the caller.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:    data.ID,
		Email: data.Email,
	}
	if data.Profile != nil {
		userM.Profile = &model.ProfileModel{
			UserID:         data.ID,
			FirstName:      data.Profile.FirstName,
			LastName:       data.Profile.LastName,
			Avatar:         data.Profile.Avatar,
			Likes:          data.Profile.Likes,
			CurrentPlaying: data.Profile.CurrentPlaying,
			Latitude:       data.Profile.Latitude,
			Longitude:      data.Profile.Longitude,
		}
	}

	return userM
}
