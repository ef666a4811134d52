package repository

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityRepository is the scan primitive behind tiered nearby-listener
// discovery. The relational store is the computation substrate: one call is
// one full scan of profiles filtered by the distance predicate.
type ProximityRepository interface {
	// ListenersWithinBand returns the profiles of every user other than
	// userID whose now-playing song is set and whose Euclidean distance from
	// (latitude, longitude) — computed on raw coordinate degrees, not
	// geodesically — lies in the half-open band (lower, upper].
	ListenersWithinBand(ctx context.Context, userID uuid.UUID, latitude, longitude, lower, upper float64) ([]*entity.Profile, error)
}
