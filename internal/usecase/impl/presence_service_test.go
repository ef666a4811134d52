package impl

import (
	"context"
	"testing"

	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/domain/service"
	mockRepo "mixtape/internal/mocks/repository"
	mockSvc "mixtape/internal/mocks/service"
	"mixtape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// presenceServiceFixtures holds all test dependencies for presence service tests.
type presenceServiceFixtures struct {
	service      usecase.PresenceUsecase
	txManager    *mockRepo.MockTransactionManager
	presenceRepo *mockRepo.MockPresenceRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestPresenceService(t *testing.T) presenceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPresenceService(PresenceServiceParams{
		TxManager:    txManager,
		PresenceRepo: presenceRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return presenceServiceFixtures{
		service:      service,
		txManager:    txManager,
		presenceRepo: presenceRepo,
		publisher:    publisher,
	}
}

func TestPresenceService_SetPlayingStatus_NewSong(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	songID := "song-42"
	input := &usecase.SetPlayingStatusInput{
		UserID: userID,
		SongID: &songID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)

			mockFactory.EXPECT().PresenceRepo().Return(mockPresenceRepo)

			mockPresenceRepo.EXPECT().
				SetCurrentPlaying(ctx, userID, &songID).
				Return(nil)

			mockPresenceRepo.EXPECT().
				AppendHistory(ctx, userID, songID).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Run(func(ctx context.Context, event *service.PlaybackEvent) {
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, songID, event.SongID)
			assert.False(t, event.StartedAt.IsZero())
		}).
		Return(nil)

	err := fx.service.SetPlayingStatus(ctx, input)

	require.NoError(t, err)
}

func TestPresenceService_SetPlayingStatus_Clear(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SetPlayingStatusInput{
		UserID: userID,
		SongID: nil,
	}

	// Clearing presence writes no history row and emits no event.
	fx.presenceRepo.EXPECT().
		SetCurrentPlaying(ctx, userID, (*string)(nil)).
		Return(nil)

	err := fx.service.SetPlayingStatus(ctx, input)

	require.NoError(t, err)
	fx.publisher.AssertNotCalled(t, "PublishPlaybackEvent", mock.Anything, mock.Anything)
}

func TestPresenceService_SetPlayingStatus_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	songID := "song-42"
	input := &usecase.SetPlayingStatusInput{
		UserID: userID,
		SongID: &songID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)

			mockFactory.EXPECT().PresenceRepo().Return(mockPresenceRepo)
			mockPresenceRepo.EXPECT().SetCurrentPlaying(ctx, userID, &songID).Return(nil)
			mockPresenceRepo.EXPECT().AppendHistory(ctx, userID, songID).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(errors.New("broker unavailable"))

	// The presence write already committed, so a publish failure is swallowed.
	err := fx.service.SetPlayingStatus(ctx, input)

	require.NoError(t, err)
}

func TestPresenceService_SetPlayingStatus_UnknownUser(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	songID := "song-42"
	input := &usecase.SetPlayingStatusInput{
		UserID: userID,
		SongID: &songID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPresenceRepo := mockRepo.NewMockPresenceRepository(t)

			mockFactory.EXPECT().PresenceRepo().Return(mockPresenceRepo)
			mockPresenceRepo.EXPECT().
				SetCurrentPlaying(ctx, userID, &songID).
				Return(repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.SetPlayingStatus(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.publisher.AssertNotCalled(t, "PublishPlaybackEvent", mock.Anything, mock.Anything)
}

func TestPresenceService_GetHistory_NewestFirst(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	recent := []string{"song-5", "song-4", "song-3", "song-2", "song-1"}

	fx.presenceRepo.EXPECT().
		RecentHistory(ctx, userID, 5).
		Return(recent, nil)

	got, err := fx.service.GetHistory(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, recent, got)
}

func TestPresenceService_GetHistory_Empty(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.presenceRepo.EXPECT().
		RecentHistory(ctx, userID, 5).
		Return(nil, nil)

	got, err := fx.service.GetHistory(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPresenceService_SetLocation_Success(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SetLocationInput{
		UserID:    userID,
		Latitude:  25.0330,
		Longitude: 121.5654,
	}

	fx.presenceRepo.EXPECT().
		SetLocation(ctx, userID, input.Latitude, input.Longitude).
		Return(nil)

	err := fx.service.SetLocation(ctx, input)

	require.NoError(t, err)
}

func TestPresenceService_SetLocation_OutOfRange(t *testing.T) {
	fx := createTestPresenceService(t)

	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		name      string
		latitude  float64
		longitude float64
	}{
		{"latitude too high", 91, 0},
		{"latitude too low", -91, 0},
		{"longitude too high", 0, 181},
		{"longitude too low", 0, -181},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := fx.service.SetLocation(ctx, &usecase.SetLocationInput{
				UserID:    userID,
				Latitude:  tc.latitude,
				Longitude: tc.longitude,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
		})
	}

	fx.presenceRepo.AssertNotCalled(t, "SetLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
