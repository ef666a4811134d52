package repository

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialRepository persists the directed follow graph.
type SocialRepository interface {
	// CreateFollow inserts the edge me -> them. Inserting an edge that
	// already exists is a no-op, backed by the store's uniqueness constraint.
	CreateFollow(ctx context.Context, me, them uuid.UUID) error

	// DeleteFollow removes the edge me -> them. Deleting a missing edge is
	// not an error.
	DeleteFollow(ctx context.Context, me, them uuid.UUID) error

	// ListFollowing returns the profiles of everyone me follows.
	ListFollowing(ctx context.Context, me uuid.UUID) ([]*entity.Profile, error)

	// ListFollowers returns the profiles of everyone following me.
	ListFollowers(ctx context.Context, me uuid.UUID) ([]*entity.Profile, error)
}
