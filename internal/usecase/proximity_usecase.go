package usecase

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// FindNearbyInput defines a tiered nearby-listener query. Radii are expressed
// in raw coordinate degrees and must satisfy 0 <= Close <= Medium <= Far.
// Zero-valued radii fall back to the configured defaults.
type FindNearbyInput struct {
	UserID       uuid.UUID
	CloseRadius  float64
	MediumRadius float64
	FarRadius    float64
}

// ProximityUsecase exposes tiered discovery of active listeners around a user.
type ProximityUsecase interface {
	// FindNearby returns active listeners around the user, bucketed into
	// close, medium, and far bands, each sorted nearest first. The caller
	// must have set a location beforehand.
	FindNearby(ctx context.Context, input *FindNearbyInput) (*entity.NearbyListeners, error)
}
