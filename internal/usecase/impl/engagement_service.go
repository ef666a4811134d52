package impl

import (
	"context"
	"log/slog"

	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/reqctx"
	"mixtape/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	txManager      repository.TransactionManager
	engagementRepo repository.EngagementRepository
	validate       *validator.Validate
	logger         *slog.Logger
}

// EngagementServiceParams holds dependencies for engagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EngagementRepo repository.EngagementRepository
	Logger         *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:      params.TxManager,
		engagementRepo: params.EngagementRepo,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return reqctx.GetLoggerOrDefault(ctx, srv.logger)
}

// LikeSong records a like and credits the owner's likes counter in one transaction.
func (srv *engagementService) LikeSong(ctx context.Context, input *usecase.LikeSongInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Liking song", slog.Any("userID", input.UserID), slog.String("songID", input.SongID), slog.Any("ownerID", input.OwnerUserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		engagementRepo := repoFactory.EngagementRepo()

		if err := engagementRepo.CreateLike(ctx, input.UserID, input.SongID); err != nil {
			return errors.Wrap(err, "failed to record like")
		}

		if err := engagementRepo.IncrementLikes(ctx, input.OwnerUserID); err != nil {
			return errors.Wrap(err, "failed to credit likes counter")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute like transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	return nil
}

// UnlikeSong removes the like rows. The owner's likes counter is not decremented.
func (srv *engagementService) UnlikeSong(ctx context.Context, input *usecase.UnlikeSongInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	// Single operation - use direct repository instance
	if err := srv.engagementRepo.DeleteLike(ctx, input.UserID, input.SongID); err != nil {
		return errors.Wrap(err, "failed to remove like")
	}

	return nil
}

// ListMyLikes returns the song ids the user has liked.
func (srv *engagementService) ListMyLikes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	songIDs, err := srv.engagementRepo.ListLikes(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list likes")
	}

	if songIDs == nil {
		songIDs = []string{}
	}

	return songIDs, nil
}

// Recommend records a song suggestion to another user.
func (srv *engagementService) Recommend(ctx context.Context, input *usecase.RecommendInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Debug("Recommending song", slog.Any("fromID", input.FromUserID), slog.Any("toID", input.ToUserID), slog.String("songID", input.SongID))

	if err := srv.engagementRepo.CreateRecommendation(ctx, input.FromUserID, input.ToUserID, input.SongID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to record recommendation")
	}

	return nil
}

// ListRecommendations returns songs recommended to the user with each sender's profile.
func (srv *engagementService) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*entity.RecommendedSong, error) {
	recommended, err := srv.engagementRepo.ListRecommendations(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	return recommended, nil
}
