package repository

import (
	"context"

	"github.com/google/uuid"
)

// PresenceRepository persists now-playing state, play history, and location.
type PresenceRepository interface {
	// SetCurrentPlaying unconditionally overwrites the profile's now-playing
	// song. A nil song clears the presence.
	SetCurrentPlaying(ctx context.Context, userID uuid.UUID, songID *string) error

	// AppendHistory writes one immutable play record with the store's current
	// timestamp.
	AppendHistory(ctx context.Context, userID uuid.UUID, songID string) error

	// RecentHistory returns up to limit song ids, newest first.
	RecentHistory(ctx context.Context, userID uuid.UUID, limit int) ([]string, error)

	// SetLocation unconditionally overwrites the profile's coordinates.
	SetLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) error
}
