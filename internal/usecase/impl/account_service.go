// Package impl contains the implementation of the application's business logic.
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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return reqctx.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		srv.log(ctx).Warn("Registration input validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:    uuid.New(),
		Email: input.Email,
		Profile: &entity.Profile{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Avatar:    input.Avatar,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return domainerrors.ErrEmailAlreadyRegistered
		}

		// The unique constraint on users.email is the backstop for the
		// check-then-insert race: a concurrent insert surfaces as the same
		// conflict error from Create.
		if err := userRepo.Create(ctx, newUser, digest); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	profile := newUser.Profile
	profile.UserID = newUser.ID
	profile.Email = newUser.Email

	return &usecase.RegisterOutput{Profile: profile}, nil
}

// Authenticate verifies credentials and issues a token pair.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	profile, digest, err := srv.userRepo.FindProfileByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, digest) {
		srv.log(ctx).Warn("Authentication failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", profile.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Authenticated successfully", slog.Any("userID", profile.UserID))

	return &usecase.AuthenticateOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// GetProfile returns the profile of the given user.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.userRepo.FindProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}
