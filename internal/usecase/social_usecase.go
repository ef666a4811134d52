package usecase

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowInput identifies a directed follow edge.
type FollowInput struct {
	UserID       uuid.UUID
	TargetUserID uuid.UUID
}

// SocialUsecase covers the directed follow graph and the shareable follow QR code.
type SocialUsecase interface {
	// Follow adds the edge user -> target. Following someone already followed
	// is a no-op.
	Follow(ctx context.Context, input *FollowInput) error

	// Unfollow removes the edge user -> target. Removing a missing edge is a no-op.
	Unfollow(ctx context.Context, input *FollowInput) error

	// ListFollowing returns the profiles the user follows.
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)

	// ListFollowers returns the profiles following the user.
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)

	// FollowQRCode renders a QR code image encoding the user's id, so another
	// client can scan it and follow the user.
	FollowQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
