package impl

import (
	"context"
	"log/slog"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/domain/service"
	"mixtape/internal/reqctx"
	"mixtape/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// socialService implements the SocialUsecase interface.
type socialService struct {
	socialRepo repository.SocialRepository
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// SocialServiceParams holds dependencies for socialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	SocialRepo repository.SocialRepository
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	return &socialService{
		socialRepo: params.SocialRepo,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *socialService) log(ctx context.Context) *slog.Logger {
	return reqctx.GetLoggerOrDefault(ctx, srv.logger)
}

// Follow adds the edge user -> target. Following someone already followed is a no-op.
func (srv *socialService) Follow(ctx context.Context, input *usecase.FollowInput) error {
	srv.log(ctx).Debug("Creating follow edge", slog.Any("userID", input.UserID), slog.Any("targetID", input.TargetUserID))

	if err := srv.socialRepo.CreateFollow(ctx, input.UserID, input.TargetUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to follow user")
	}

	return nil
}

// Unfollow removes the edge user -> target. Removing a missing edge is a no-op.
func (srv *socialService) Unfollow(ctx context.Context, input *usecase.FollowInput) error {
	srv.log(ctx).Debug("Deleting follow edge", slog.Any("userID", input.UserID), slog.Any("targetID", input.TargetUserID))

	if err := srv.socialRepo.DeleteFollow(ctx, input.UserID, input.TargetUserID); err != nil {
		return errors.Wrap(err, "failed to unfollow user")
	}

	return nil
}

// ListFollowing returns the profiles the user follows.
func (srv *socialService) ListFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	profiles, err := srv.socialRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list following")
	}

	return profiles, nil
}

// ListFollowers returns the profiles following the user.
func (srv *socialService) ListFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	profiles, err := srv.socialRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followers")
	}

	return profiles, nil
}

// FollowQRCode renders a QR code image encoding the user's id.
func (srv *socialService) FollowQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	png, err := srv.qrService.GenerateFollowQR(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate follow QR code", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate follow QR code")
	}

	return png, nil
}
