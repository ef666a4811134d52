package main

import (
	"context"
	"log/slog"

	"mixtape/config"
	"mixtape/internal/domain/service"
	"mixtape/internal/infra/auth"
	logs "mixtape/internal/infra/log"
	"mixtape/internal/infra/persistence/model"
	"mixtape/internal/infra/persistence/postgres"
	"mixtape/internal/infra/pubsub"
	"mixtape/internal/infra/qrcode"
	"mixtape/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			bootstrap,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPresenceRepository,
			postgres.NewProximityRepository,
			postgres.NewSocialRepository,
			postgres.NewEngagementRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewPresenceService,
			impl.NewProximityService,
			impl.NewSocialService,
			impl.NewEngagementService,
			impl.NewDeviceService,
		),
	)
}

type bootstrapParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

func bootstrap(params bootstrapParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := migrate(params.DB.WithContext(ctx)); err != nil {
				return err
			}

			params.Logger.Info("mixtape data layer ready",
				slog.String("env", params.Config.Env.Env),
				slog.String("service", params.Config.Env.ServiceName),
			)

			return nil
		},
	})
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.HistorySongModel{},
		&model.FollowModel{},
		&model.SongLikeModel{},
		&model.RecommendationModel{},
		&model.UserDeviceModel{},
	); err != nil {
		return errors.Wrap(err, "failed to run schema migration")
	}

	return nil
}
