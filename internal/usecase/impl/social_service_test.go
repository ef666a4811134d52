package impl

import (
	"context"
	"testing"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	mockRepo "mixtape/internal/mocks/repository"
	mockSvc "mixtape/internal/mocks/service"
	"mixtape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// socialServiceFixtures holds all test dependencies for social service tests.
type socialServiceFixtures struct {
	service    usecase.SocialUsecase
	socialRepo *mockRepo.MockSocialRepository
	qrService  *mockSvc.MockQRCodeService
}

func createTestSocialService(t *testing.T) socialServiceFixtures {
	socialRepo := mockRepo.NewMockSocialRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewSocialService(SocialServiceParams{
		SocialRepo: socialRepo,
		QRService:  qrService,
		Logger:     newDiscardLogger(),
	})

	return socialServiceFixtures{
		service:    service,
		socialRepo: socialRepo,
		qrService:  qrService,
	}
}

func TestSocialService_Follow_Success(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	me := uuid.New()
	them := uuid.New()

	fx.socialRepo.EXPECT().
		CreateFollow(ctx, me, them).
		Return(nil)

	err := fx.service.Follow(ctx, &usecase.FollowInput{UserID: me, TargetUserID: them})

	require.NoError(t, err)
}

func TestSocialService_Follow_UnknownTarget(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	me := uuid.New()
	them := uuid.New()

	fx.socialRepo.EXPECT().
		CreateFollow(ctx, me, them).
		Return(repository.ErrUserNotFound)

	err := fx.service.Follow(ctx, &usecase.FollowInput{UserID: me, TargetUserID: them})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSocialService_Unfollow_MissingEdgeIsNoop(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	me := uuid.New()
	them := uuid.New()

	// The repository treats deleting a missing edge as a no-op.
	fx.socialRepo.EXPECT().
		DeleteFollow(ctx, me, them).
		Return(nil)

	err := fx.service.Unfollow(ctx, &usecase.FollowInput{UserID: me, TargetUserID: them})

	require.NoError(t, err)
}

func TestSocialService_ListFollowing(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	me := uuid.New()
	followed := []*entity.Profile{
		{UserID: uuid.New(), Email: "a@example.com"},
		{UserID: uuid.New(), Email: "b@example.com"},
	}

	fx.socialRepo.EXPECT().
		ListFollowing(ctx, me).
		Return(followed, nil)

	got, err := fx.service.ListFollowing(ctx, me)

	require.NoError(t, err)
	assert.Equal(t, followed, got)
}

func TestSocialService_ListFollowers(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	me := uuid.New()
	followers := []*entity.Profile{
		{UserID: uuid.New(), Email: "c@example.com"},
	}

	fx.socialRepo.EXPECT().
		ListFollowers(ctx, me).
		Return(followers, nil)

	got, err := fx.service.ListFollowers(ctx, me)

	require.NoError(t, err)
	assert.Equal(t, followers, got)
}

func TestSocialService_FollowQRCode(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.qrService.EXPECT().
		GenerateFollowQR(userID).
		Return(png, nil)

	got, err := fx.service.FollowQRCode(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestSocialService_FollowQRCode_GenerationError(t *testing.T) {
	fx := createTestSocialService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.qrService.EXPECT().
		GenerateFollowQR(userID).
		Return(nil, errors.New("encode failed"))

	got, err := fx.service.FollowQRCode(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
}
