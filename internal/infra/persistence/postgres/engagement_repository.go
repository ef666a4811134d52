// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// engagementRepository implements the repository.EngagementRepository interface using GORM.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{
		db: db,
	}
}

// recommendationRow is the scan target for the recommendation listing join.
type recommendationRow struct {
	SongID         string
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

// CreateLike records one like event. There is no uniqueness constraint on
// (song_id, user_id), so repeated likes insert repeated rows.
func (repo *engagementRepository) CreateLike(ctx context.Context, userID uuid.UUID, songID string) error {
	likeM := &model.SongLikeModel{
		ID:     uuid.New(),
		SongID: songID,
		UserID: userID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	return nil
}

// IncrementLikes bumps the owner's likes counter by one.
func (repo *engagementRepository) IncrementLikes(ctx context.Context, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", ownerID).
		Update("likes", gorm.Expr("likes + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment likes counter")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteLike removes the like rows for (userID, songID). The profile's likes
// counter is deliberately left untouched.
func (repo *engagementRepository) DeleteLike(ctx context.Context, userID uuid.UUID, songID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Delete(&model.SongLikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete like")
	}

	return nil
}

// ListLikes returns the song ids the user has liked.
func (repo *engagementRepository) ListLikes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var songIDs []string

	if err := repo.db.WithContext(ctx).
		Model(&model.SongLikeModel{}).
		Where("user_id = ?", userID).
		Pluck("song_id", &songIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	return songIDs, nil
}

// CreateRecommendation inserts a suggestion from one user to another.
func (repo *engagementRepository) CreateRecommendation(ctx context.Context, fromUserID, toUserID uuid.UUID, songID string) error {
	recM := &model.RecommendationModel{
		ID:         uuid.New(),
		ToUserID:   toUserID,
		FromUserID: fromUserID,
		SongID:     songID,
	}

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recommendation")
	}

	return nil
}

// ListRecommendations returns songs recommended to the user, each joined with
// the sender's profile so the caller can show who suggested it.
func (repo *engagementRepository) ListRecommendations(ctx context.Context, toUserID uuid.UUID) ([]*entity.RecommendedSong, error) {
	var rows []recommendationRow

	if err := repo.db.WithContext(ctx).
		Table("recommendations").
		Select("recommendations.song_id, " + profileSelectColumns).
		Joins("JOIN profiles ON profiles.user_id = recommendations.from_user_id").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("recommendations.to_user_id = ?", toUserID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	recommended := make([]*entity.RecommendedSong, 0, len(rows))
	for _, row := range rows {
		recommended = append(recommended, &entity.RecommendedSong{
			From: &entity.Profile{
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
			},
			SongID: row.SongID,
		})
	}

	return recommended, nil
}
