// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// presenceRepository implements the repository.PresenceRepository interface using GORM.
type presenceRepository struct {
	db *gorm.DB
}

// NewPresenceRepository is the constructor for presenceRepository.
func NewPresenceRepository(db *gorm.DB) repository.PresenceRepository {
	return &presenceRepository{
		db: db,
	}
}

// SetCurrentPlaying unconditionally overwrites the profile's now-playing song.
// A nil songID writes NULL, which takes the listener out of proximity results.
func (repo *presenceRepository) SetCurrentPlaying(ctx context.Context, userID uuid.UUID, songID *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update("current_playing", songID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set current playing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AppendHistory writes one immutable play record stamped by the database.
func (repo *presenceRepository) AppendHistory(ctx context.Context, userID uuid.UUID, songID string) error {
	historyM := &model.HistorySongModel{
		ID:     uuid.New(),
		UserID: userID,
		SongID: songID,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append play history")
	}

	return nil
}

// RecentHistory returns up to limit song ids, newest first.
func (repo *presenceRepository) RecentHistory(ctx context.Context, userID uuid.UUID, limit int) ([]string, error) {
	var songIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.HistorySongModel{}).
		Where("user_id = ?", userID).
		Order("played_at_time DESC").
		Limit(limit).
		Pluck("song_id", &songIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list play history")
	}

	return songIDs, nil
}

// SetLocation unconditionally overwrites the profile's coordinates.
func (repo *presenceRepository) SetLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"latitude":  latitude,
			"longitude": longitude,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
