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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:     "test@example.com",
		Password:  "Password123!",
		FirstName: "Test",
		LastName:  "User",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(false, nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User"), "hashed_password").
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.Profile.Email)
	assert.Equal(t, input.FirstName, output.Profile.FirstName)
	assert.NotEqual(t, uuid.Nil, output.Profile.UserID)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				ExistsByEmail(ctx, input.Email).
				Return(true, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountService_Register_InvalidEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "not-an-email",
		Password: "Password123!",
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Register_ShortPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "short",
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AuthenticateInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	profile := &entity.Profile{
		UserID: userID,
		Email:  input.Email,
	}

	fx.userRepo.EXPECT().
		FindProfileByEmail(ctx, input.Email).
		Return(profile, "stored_digest", nil)

	fx.hasher.EXPECT().Check(input.Password, "stored_digest").Return(true)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, profile, output.Profile)
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Email:    "ghost@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindProfileByEmail(ctx, input.Email).
		Return(nil, "", repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AuthenticateInput{
		Email:    "test@example.com",
		Password: "wrong-password",
	}
	profile := &entity.Profile{
		UserID: userID,
		Email:  input.Email,
	}

	fx.userRepo.EXPECT().
		FindProfileByEmail(ctx, input.Email).
		Return(profile, "stored_digest", nil)

	fx.hasher.EXPECT().Check(input.Password, "stored_digest").Return(false)

	output, err := fx.service.Authenticate(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		UserID:    userID,
		Email:     "test@example.com",
		FirstName: "Test",
	}

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(profile, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindProfileByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
