package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/domain/service"
	"mixtape/internal/reqctx"
	"mixtape/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// historyLimit caps how many recent plays GetHistory returns.
const historyLimit = 5

// presenceService implements the PresenceUsecase interface.
type presenceService struct {
	txManager    repository.TransactionManager
	presenceRepo repository.PresenceRepository
	publisher    service.EventPublisher
	validate     *validator.Validate
	logger       *slog.Logger
}

// PresenceServiceParams holds dependencies for presenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PresenceRepo repository.PresenceRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	return &presenceService{
		txManager:    params.TxManager,
		presenceRepo: params.PresenceRepo,
		publisher:    params.Publisher,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *presenceService) log(ctx context.Context) *slog.Logger {
	return reqctx.GetLoggerOrDefault(ctx, srv.logger)
}

// SetPlayingStatus overwrites the user's now-playing song. A non-nil song also
// appends one play record in the same transaction and emits a playback event
// after commit; a nil song only clears the presence.
func (srv *presenceService) SetPlayingStatus(ctx context.Context, input *usecase.SetPlayingStatusInput) error {
	if input.SongID == nil {
		srv.log(ctx).Debug("Clearing playing status", slog.Any("userID", input.UserID))

		// Single operation - use direct repository instance
		if err := srv.presenceRepo.SetCurrentPlaying(ctx, input.UserID, nil); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to clear playing status")
		}

		return nil
	}

	songID := *input.SongID
	srv.log(ctx).Debug("Setting playing status", slog.Any("userID", input.UserID), slog.String("songID", songID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		presenceRepo := repoFactory.PresenceRepo()

		if err := presenceRepo.SetCurrentPlaying(ctx, input.UserID, input.SongID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to set playing status")
		}

		if err := presenceRepo.AppendHistory(ctx, input.UserID, songID); err != nil {
			return errors.Wrap(err, "failed to append play history")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute playing status transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return err
	}

	// The presence write is already committed; a publish failure must not
	// surface to the caller.
	event := &service.PlaybackEvent{
		RequestID: reqctx.GetRequestID(ctx),
		UserID:    input.UserID.String(),
		SongID:    songID,
		StartedAt: time.Now(),
	}
	if err := srv.publisher.PublishPlaybackEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish playback event", slog.Any("userID", input.UserID), slog.Any("error", err))
	}

	return nil
}

// GetHistory returns the user's most recent plays, newest first.
func (srv *presenceService) GetHistory(ctx context.Context, userID uuid.UUID) ([]string, error) {
	songIDs, err := srv.presenceRepo.RecentHistory(ctx, userID, historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load play history")
	}

	if songIDs == nil {
		songIDs = []string{}
	}

	return songIDs, nil
}

// SetLocation overwrites the user's coordinates after validating them.
func (srv *presenceService) SetLocation(ctx context.Context, input *usecase.SetLocationInput) error {
	if err := srv.validate.Struct(input); err != nil {
		srv.log(ctx).Warn("Rejected location update", slog.Any("userID", input.UserID), slog.Float64("latitude", input.Latitude), slog.Float64("longitude", input.Longitude))

		return domainerrors.ErrInvalidCoordinates
	}

	if err := srv.presenceRepo.SetLocation(ctx, input.UserID, input.Latitude, input.Longitude); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to set location")
	}

	return nil
}
