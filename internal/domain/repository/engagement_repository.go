package repository

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// EngagementRepository persists song likes, the denormalized likes counter,
// and recommendations.
type EngagementRepository interface {
	// CreateLike records one like event. Duplicates are permitted.
	CreateLike(ctx context.Context, userID uuid.UUID, songID string) error

	// IncrementLikes bumps the owner's likes counter by one.
	IncrementLikes(ctx context.Context, ownerID uuid.UUID) error

	// DeleteLike removes the like rows for (userID, songID). The likes
	// counter is deliberately left untouched.
	DeleteLike(ctx context.Context, userID uuid.UUID, songID string) error

	// ListLikes returns the song ids the user has liked.
	ListLikes(ctx context.Context, userID uuid.UUID) ([]string, error)

	// CreateRecommendation inserts a suggestion from one user to another.
	CreateRecommendation(ctx context.Context, fromUserID, toUserID uuid.UUID, songID string) error

	// ListRecommendations returns songs recommended to the user, each paired
	// with the sender's profile.
	ListRecommendations(ctx context.Context, toUserID uuid.UUID) ([]*entity.RecommendedSong, error)
}
