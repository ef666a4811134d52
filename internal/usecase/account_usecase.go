// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	FirstName string `validate:"max=100"`
	LastName  string `validate:"max=100"`
	Avatar    string `validate:"omitempty,url"`
}

// AuthenticateInput defines the data required to log in.
type AuthenticateInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's profile.
type RegisterOutput struct {
	Profile *entity.Profile
}

// AuthenticateOutput returns the token pair after successful credential verification.
type AuthenticateOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with an empty profile. Fails when the
	// email is already taken.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Authenticate verifies credentials and issues a token pair.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// GetProfile returns the profile of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
