package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues the token pair handed to the external API layer after a
// successful authentication. Validation of incoming tokens is the API layer's
// concern; this layer only signs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
