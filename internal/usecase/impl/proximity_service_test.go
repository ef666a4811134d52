package impl

import (
	"context"
	"testing"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	mockRepo "mixtape/internal/mocks/repository"
	"mixtape/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proximityServiceFixtures holds all test dependencies for proximity service tests.
type proximityServiceFixtures struct {
	service       usecase.ProximityUsecase
	proximityRepo *mockRepo.MockProximityRepository
	userRepo      *mockRepo.MockUserRepository
}

func createTestProximityService(t *testing.T) proximityServiceFixtures {
	proximityRepo := mockRepo.NewMockProximityRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProximityService(ProximityServiceParams{
		ProximityRepo: proximityRepo,
		UserRepo:      userRepo,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return proximityServiceFixtures{
		service:       service,
		proximityRepo: proximityRepo,
		userRepo:      userRepo,
	}
}

func listeningProfile(latitude, longitude float64) *entity.Profile {
	return &entity.Profile{
		UserID:         uuid.New(),
		CurrentPlaying: ptr("song-1"),
		Latitude:       &latitude,
		Longitude:      &longitude,
	}
}

func TestProximityService_FindNearby_BandsSortedNearestFirst(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	caller := &entity.Profile{
		UserID:    userID,
		Latitude:  ptr(10.0),
		Longitude: ptr(20.0),
	}

	// Deliberately out of order: 0.8 degrees away before 0.3 degrees away.
	farther := listeningProfile(10.8, 20.0)
	nearer := listeningProfile(10.3, 20.0)

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(caller, nil)

	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 10.0, 20.0, 0.0, 1.0).
		Return([]*entity.Profile{farther, nearer}, nil)

	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 10.0, 20.0, 1.0, 2.0).
		Return(nil, nil)

	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 10.0, 20.0, 2.0, 3.0).
		Return(nil, nil)

	got, err := fx.service.FindNearby(ctx, &usecase.FindNearbyInput{
		UserID:       userID,
		CloseRadius:  1,
		MediumRadius: 2,
		FarRadius:    3,
	})

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Close, 2)
	assert.Equal(t, nearer.UserID, got.Close[0].UserID)
	assert.Equal(t, farther.UserID, got.Close[1].UserID)
	assert.NotNil(t, got.Medium)
	assert.Empty(t, got.Medium)
	assert.NotNil(t, got.Far)
	assert.Empty(t, got.Far)
}

func TestProximityService_FindNearby_DefaultRadii(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	caller := &entity.Profile{
		UserID:    userID,
		Latitude:  ptr(0.0),
		Longitude: ptr(0.0),
	}

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(caller, nil)

	// All-zero input falls back to the configured radii (1, 2, 3).
	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 0.0, 0.0, 0.0, 1.0).
		Return(nil, nil)
	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 0.0, 0.0, 1.0, 2.0).
		Return(nil, nil)
	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 0.0, 0.0, 2.0, 3.0).
		Return(nil, nil)

	got, err := fx.service.FindNearby(ctx, &usecase.FindNearbyInput{UserID: userID})

	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestProximityService_FindNearby_ZeroCloseRadius(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	caller := &entity.Profile{
		UserID:    userID,
		Latitude:  ptr(0.0),
		Longitude: ptr(0.0),
	}

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(caller, nil)

	// A zero close radius makes the close band (0, 0], which matches nothing.
	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 0.0, 0.0, 0.0, 0.0).
		Return(nil, nil)
	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 0.0, 0.0, 0.0, 2.0).
		Return(nil, nil)
	fx.proximityRepo.EXPECT().
		ListenersWithinBand(ctx, userID, 0.0, 0.0, 2.0, 3.0).
		Return(nil, nil)

	got, err := fx.service.FindNearby(ctx, &usecase.FindNearbyInput{
		UserID:       userID,
		CloseRadius:  0,
		MediumRadius: 2,
		FarRadius:    3,
	})

	require.NoError(t, err)
	assert.Empty(t, got.Close)
}

func TestProximityService_FindNearby_UnorderedRadii(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		name                string
		closeR, mediumR, farR float64
	}{
		{"close greater than medium", 5, 2, 10},
		{"medium greater than far", 1, 10, 5},
		{"negative close", -1, 2, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fx.service.FindNearby(ctx, &usecase.FindNearbyInput{
				UserID:       userID,
				CloseRadius:  tc.closeR,
				MediumRadius: tc.mediumR,
				FarRadius:    tc.farR,
			})

			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidRadiusOrder)
		})
	}
}

func TestProximityService_FindNearby_LocationNotSet(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()
	caller := &entity.Profile{
		UserID:    userID,
		Longitude: ptr(121.5),
	}

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(caller, nil)

	got, err := fx.service.FindNearby(ctx, &usecase.FindNearbyInput{
		UserID:       userID,
		CloseRadius:  1,
		MediumRadius: 2,
		FarRadius:    3,
	})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotSet)
}

func TestProximityService_FindNearby_UnknownUser(t *testing.T) {
	fx := createTestProximityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.FindNearby(ctx, &usecase.FindNearbyInput{
		UserID:       userID,
		CloseRadius:  1,
		MediumRadius: 2,
		FarRadius:    3,
	})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
