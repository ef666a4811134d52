package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SetPlayingStatusInput carries a now-playing update. A nil SongID clears the
// presence without touching history.
type SetPlayingStatusInput struct {
	UserID uuid.UUID
	SongID *string
}

// SetLocationInput carries a location update in WGS84 degrees.
type SetLocationInput struct {
	UserID    uuid.UUID
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

// PresenceUsecase covers now-playing state, play history, and location updates.
type PresenceUsecase interface {
	// SetPlayingStatus overwrites the user's now-playing song. A non-nil song
	// also appends one play record and emits a playback event; a nil song
	// only clears the presence.
	SetPlayingStatus(ctx context.Context, input *SetPlayingStatusInput) error

	// GetHistory returns the user's most recent plays, newest first.
	GetHistory(ctx context.Context, userID uuid.UUID) ([]string, error)

	// SetLocation overwrites the user's coordinates after validating them.
	SetLocation(ctx context.Context, input *SetLocationInput) error
}
