package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlayRecord is one entry of a user's play history. Records are append-only:
// written exactly once when a non-nil now-playing status is set, never
// updated or deleted.
type PlayRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	SongID       string
	PlayedAtTime time.Time // Set by the store at insert time.
}

// SongLike records a single like event. Duplicate likes from the same user
// are permitted; each insertion bumps the liked owner's counter by one.
type SongLike struct {
	ID     uuid.UUID
	SongID string
	UserID uuid.UUID // The user who liked the song.
}

// Recommendation is a song suggested by one user to another.
type Recommendation struct {
	ID         uuid.UUID
	ToUserID   uuid.UUID
	FromUserID uuid.UUID
	SongID     string
	CreatedAt  time.Time
}

// RecommendedSong pairs a recommended song with the profile of the user who
// sent it.
type RecommendedSong struct {
	From   *Profile
	SongID string
}
