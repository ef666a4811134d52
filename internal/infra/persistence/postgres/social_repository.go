// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mixtape/internal/domain/entity"
	"mixtape/internal/domain/repository"
	"mixtape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// socialRepository implements the repository.SocialRepository interface using GORM.
type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository is the constructor for socialRepository.
func NewSocialRepository(db *gorm.DB) repository.SocialRepository {
	return &socialRepository{
		db: db,
	}
}

// profileListRow is the scan target for queries that join profiles with users
// to carry the email alongside the profile columns.
type profileListRow struct {
	UserID         uuid.UUID
	Email          string
	FirstName      string
	LastName       string
	Avatar         string
	Likes          int
	CurrentPlaying *string
	Latitude       *float64
	Longitude      *float64
	UpdatedAt      time.Time
}

// profileSelectColumns is shared by every listing query that returns profiles.
const profileSelectColumns = "profiles.user_id, users.email, profiles.first_name, profiles.last_name, profiles.avatar, profiles.likes, profiles.current_playing, profiles.latitude, profiles.longitude, profiles.updated_at"

// CreateFollow inserts the edge me -> them. The composite primary key on
// (user_id, following_user_id) plus ON CONFLICT DO NOTHING makes the insert
// idempotent.
func (repo *socialRepository) CreateFollow(ctx context.Context, me, them uuid.UUID) error {
	followM := &model.FollowModel{
		UserID:          me,
		FollowingUserID: them,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(followM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create follow edge")
	}

	return nil
}

// DeleteFollow removes the edge me -> them. A missing edge is not an error.
func (repo *socialRepository) DeleteFollow(ctx context.Context, me, them uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND following_user_id = ?", me, them).
		Delete(&model.FollowModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete follow edge")
	}

	return nil
}

// ListFollowing returns the profiles of everyone me follows.
func (repo *socialRepository) ListFollowing(ctx context.Context, me uuid.UUID) ([]*entity.Profile, error) {
	var rows []profileListRow

	if err := repo.db.WithContext(ctx).
		Table("following_users").
		Select(profileSelectColumns).
		Joins("JOIN profiles ON profiles.user_id = following_users.following_user_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("following_users.user_id = ?", me).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return toProfileList(rows), nil
}

// ListFollowers returns the profiles of everyone following me.
func (repo *socialRepository) ListFollowers(ctx context.Context, me uuid.UUID) ([]*entity.Profile, error) {
	var rows []profileListRow

	if err := repo.db.WithContext(ctx).
		Table("following_users").
		Select(profileSelectColumns).
		Joins("JOIN profiles ON profiles.user_id = following_users.user_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("following_users.following_user_id = ?", me).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return toProfileList(rows), nil
}

// --- Mapper Functions ---

// toProfileList converts joined scan rows into domain profiles.
func toProfileList(rows []profileListRow) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, &entity.Profile{
			UserID:         row.UserID,
			Email:          row.Email,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Avatar:         row.Avatar,
			Likes:          row.Likes,
			CurrentPlaying: row.CurrentPlaying,
			Latitude:       row.Latitude,
			Longitude:      row.Longitude,
			UpdatedAt:      row.UpdatedAt,
		})
	}

	return profiles
}
