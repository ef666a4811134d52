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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// engagementServiceFixtures holds all test dependencies for engagement service tests.
type engagementServiceFixtures struct {
	service        usecase.EngagementUsecase
	txManager      *mockRepo.MockTransactionManager
	engagementRepo *mockRepo.MockEngagementRepository
}

func createTestEngagementService(t *testing.T) engagementServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	engagementRepo := mockRepo.NewMockEngagementRepository(t)

	service := NewEngagementService(EngagementServiceParams{
		TxManager:      txManager,
		EngagementRepo: engagementRepo,
		Logger:         newDiscardLogger(),
	})

	return engagementServiceFixtures{
		service:        service,
		txManager:      txManager,
		engagementRepo: engagementRepo,
	}
}

func TestEngagementService_LikeSong_InsertsLikeAndCreditsOwner(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	songID := "song-42"

	creditCalls := 0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)

			mockFactory.EXPECT().EngagementRepo().Return(mockEngagementRepo)

			mockEngagementRepo.EXPECT().
				CreateLike(ctx, userID, songID).
				Return(nil)

			mockEngagementRepo.EXPECT().
				IncrementLikes(ctx, ownerID).
				Run(func(ctx context.Context, ownerID uuid.UUID) {
					creditCalls++
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.LikeSong(ctx, &usecase.LikeSongInput{
		UserID:      userID,
		SongID:      songID,
		OwnerUserID: ownerID,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, creditCalls)
}

func TestEngagementService_LikeSong_RollsBackOnCounterFailure(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	songID := "song-42"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockEngagementRepo := mockRepo.NewMockEngagementRepository(t)

			mockFactory.EXPECT().EngagementRepo().Return(mockEngagementRepo)
			mockEngagementRepo.EXPECT().CreateLike(ctx, userID, songID).Return(nil)
			mockEngagementRepo.EXPECT().
				IncrementLikes(ctx, ownerID).
				Return(repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.LikeSong(ctx, &usecase.LikeSongInput{
		UserID:      userID,
		SongID:      songID,
		OwnerUserID: ownerID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestEngagementService_LikeSong_EmptySongID(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()

	err := fx.service.LikeSong(ctx, &usecase.LikeSongInput{
		UserID:      uuid.New(),
		SongID:      "",
		OwnerUserID: uuid.New(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestEngagementService_UnlikeSong_LeavesCounterAlone(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	songID := "song-42"

	fx.engagementRepo.EXPECT().
		DeleteLike(ctx, userID, songID).
		Return(nil)

	err := fx.service.UnlikeSong(ctx, &usecase.UnlikeSongInput{
		UserID: userID,
		SongID: songID,
	})

	require.NoError(t, err)
	// Withdrawing a like never touches the owner's counter.
	fx.engagementRepo.AssertNotCalled(t, "IncrementLikes", mock.Anything, mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestEngagementService_ListMyLikes(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()
	likes := []string{"song-1", "song-2"}

	fx.engagementRepo.EXPECT().
		ListLikes(ctx, userID).
		Return(likes, nil)

	got, err := fx.service.ListMyLikes(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, likes, got)
}

func TestEngagementService_ListMyLikes_Empty(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.engagementRepo.EXPECT().
		ListLikes(ctx, userID).
		Return(nil, nil)

	got, err := fx.service.ListMyLikes(ctx, userID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEngagementService_Recommend_Success(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()
	songID := "song-42"

	fx.engagementRepo.EXPECT().
		CreateRecommendation(ctx, fromID, toID, songID).
		Return(nil)

	err := fx.service.Recommend(ctx, &usecase.RecommendInput{
		FromUserID: fromID,
		ToUserID:   toID,
		SongID:     songID,
	})

	require.NoError(t, err)
}

func TestEngagementService_Recommend_UnknownRecipient(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	fromID := uuid.New()
	toID := uuid.New()

	fx.engagementRepo.EXPECT().
		CreateRecommendation(ctx, fromID, toID, "song-42").
		Return(repository.ErrUserNotFound)

	err := fx.service.Recommend(ctx, &usecase.RecommendInput{
		FromUserID: fromID,
		ToUserID:   toID,
		SongID:     "song-42",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestEngagementService_ListRecommendations_CarriesSenderProfile(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	toID := uuid.New()
	sender := &entity.Profile{UserID: uuid.New(), Email: "sender@example.com", FirstName: "Sender"}
	recommended := []*entity.RecommendedSong{
		{From: sender, SongID: "song-42"},
	}

	fx.engagementRepo.EXPECT().
		ListRecommendations(ctx, toID).
		Return(recommended, nil)

	got, err := fx.service.ListRecommendations(ctx, toID)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sender.UserID, got[0].From.UserID)
	assert.Equal(t, "song-42", got[0].SongID)
}

func TestEngagementService_ListRecommendations_Error(t *testing.T) {
	fx := createTestEngagementService(t)

	ctx := context.Background()
	toID := uuid.New()

	fx.engagementRepo.EXPECT().
		ListRecommendations(ctx, toID).
		Return(nil, errors.New("connection reset"))

	got, err := fx.service.ListRecommendations(ctx, toID)

	require.Error(t, err)
	assert.Nil(t, got)
}
