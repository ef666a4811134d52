package usecase

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeSongInput identifies the liker, the liked song, and the song's owner
// whose likes counter is credited.
type LikeSongInput struct {
	UserID      uuid.UUID
	SongID      string `validate:"required"`
	OwnerUserID uuid.UUID
}

// UnlikeSongInput identifies a like to withdraw.
type UnlikeSongInput struct {
	UserID uuid.UUID
	SongID string `validate:"required"`
}

// RecommendInput carries a song suggestion from one user to another.
type RecommendInput struct {
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	SongID     string `validate:"required"`
}

// EngagementUsecase covers song likes, the denormalized likes counter, and
// recommendations between users.
type EngagementUsecase interface {
	// LikeSong records a like and credits the owner's likes counter, atomically.
	LikeSong(ctx context.Context, input *LikeSongInput) error

	// UnlikeSong removes the like rows. The owner's likes counter is not
	// decremented.
	UnlikeSong(ctx context.Context, input *UnlikeSongInput) error

	// ListMyLikes returns the song ids the user has liked.
	ListMyLikes(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Recommend records a song suggestion to another user.
	Recommend(ctx context.Context, input *RecommendInput) error

	// ListRecommendations returns songs recommended to the user together with
	// each sender's profile.
	ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*entity.RecommendedSong, error)
}
