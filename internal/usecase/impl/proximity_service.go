package impl

import (
	"context"
	"log/slog"
	"sort"

	"mixtape/config"
	"mixtape/internal/domain/entity"
	domainerrors "mixtape/internal/domain/errors"
	"mixtape/internal/domain/repository"
	"mixtape/internal/reqctx"
	"mixtape/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// proximityService implements the ProximityUsecase interface.
type proximityService struct {
	proximityRepo repository.ProximityRepository
	userRepo      repository.UserRepository
	defaults      config.ProximityConfig
	logger        *slog.Logger
}

// ProximityServiceParams holds dependencies for proximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	ProximityRepo repository.ProximityRepository
	UserRepo      repository.UserRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewProximityService is the constructor for proximityService.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	var defaults config.ProximityConfig
	if params.Config != nil && params.Config.Proximity != nil {
		defaults = *params.Config.Proximity
	}

	return &proximityService{
		proximityRepo: params.ProximityRepo,
		userRepo:      params.UserRepo,
		defaults:      defaults,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return reqctx.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearby returns active listeners around the caller, bucketed into close,
// medium and far bands, each sorted nearest first.
func (srv *proximityService) FindNearby(ctx context.Context, input *usecase.FindNearbyInput) (*entity.NearbyListeners, error) {
	closeRadius, mediumRadius, farRadius := input.CloseRadius, input.MediumRadius, input.FarRadius
	if closeRadius == 0 && mediumRadius == 0 && farRadius == 0 {
		closeRadius, mediumRadius, farRadius = srv.defaults.CloseRadius, srv.defaults.MediumRadius, srv.defaults.FarRadius
	}

	if closeRadius < 0 || closeRadius > mediumRadius || mediumRadius > farRadius {
		srv.log(ctx).Warn("Rejected nearby query with unordered radii",
			slog.Any("userID", input.UserID),
			slog.Float64("close", closeRadius),
			slog.Float64("medium", mediumRadius),
			slog.Float64("far", farRadius))

		return nil, domainerrors.ErrInvalidRadiusOrder
	}

	caller, err := srv.userRepo.FindProfileByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load caller profile")
	}

	if !caller.HasLocation() {
		return nil, domainerrors.ErrLocationNotSet
	}

	latitude, longitude := *caller.Latitude, *caller.Longitude
	origin := orb.Point{longitude, latitude}

	// Three independent band scans with half-open bounds: a listener sits in
	// exactly one band, and the strict lower bound keeps the caller's exact
	// coordinates (distance zero) out of the close band.
	closeBand, err := srv.scanBand(ctx, input.UserID, latitude, longitude, 0, closeRadius, origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan close band")
	}

	mediumBand, err := srv.scanBand(ctx, input.UserID, latitude, longitude, closeRadius, mediumRadius, origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan medium band")
	}

	farBand, err := srv.scanBand(ctx, input.UserID, latitude, longitude, mediumRadius, farRadius, origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan far band")
	}

	srv.log(ctx).Debug("Nearby scan completed",
		slog.Any("userID", input.UserID),
		slog.Int("close", len(closeBand)),
		slog.Int("medium", len(mediumBand)),
		slog.Int("far", len(farBand)))

	return &entity.NearbyListeners{
		Close:  closeBand,
		Medium: mediumBand,
		Far:    farBand,
	}, nil
}

// scanBand runs one band query and sorts the result nearest first.
func (srv *proximityService) scanBand(ctx context.Context, userID uuid.UUID, latitude, longitude, lower, upper float64, origin orb.Point) ([]*entity.Profile, error) {
	profiles, err := srv.proximityRepo.ListenersWithinBand(ctx, userID, latitude, longitude, lower, upper)
	if err != nil {
		return nil, err
	}

	if profiles == nil {
		profiles = []*entity.Profile{}
	}

	// Same planar metric as the store-side predicate, so the ordering agrees
	// with band membership.
	sort.SliceStable(profiles, func(i, j int) bool {
		return planar.Distance(origin, profilePoint(profiles[i])) < planar.Distance(origin, profilePoint(profiles[j]))
	})

	return profiles, nil
}

// profilePoint maps a profile's coordinates to an orb.Point (lon, lat order).
func profilePoint(p *entity.Profile) orb.Point {
	if p == nil || p.Latitude == nil || p.Longitude == nil {
		return orb.Point{}
	}

	return orb.Point{*p.Longitude, *p.Latitude}
}
