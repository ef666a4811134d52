package auth

import (
	"testing"
	"time"

	"mixtape/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateTokens(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, tokenService)

	userID := uuid.New()

	accessToken, refreshToken, err := tokenService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	svc := tokenService.(*jwtService)

	// Validate access token claims
	accessParsed, err := svc.ValidateToken(accessToken, svc.accessSecret)
	assert.NoError(t, err)
	assert.True(t, accessParsed.Valid)

	accessClaims := accessParsed.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), accessClaims["sub"])
	assert.Equal(t, "access", accessClaims["type"])

	// Validate refresh token claims
	refreshParsed, err := svc.ValidateToken(refreshToken, svc.refreshSecret)
	assert.NoError(t, err)
	assert.True(t, refreshParsed.Valid)

	refreshClaims := refreshParsed.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), refreshClaims["sub"])
	assert.Equal(t, "refresh", refreshClaims["type"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	svc := tokenService.(*jwtService)

	accessToken, _, err := tokenService.GenerateTokens(uuid.New())
	assert.NoError(t, err)

	// Access tokens must not validate against the refresh secret.
	_, err = svc.ValidateToken(accessToken, svc.refreshSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	svc := tokenService.(*jwtService)

	parsed, err := svc.ValidateToken("clearly-not-a-jwt-token-format", svc.accessSecret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	tokenService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	duration := tokenService.GetRefreshTokenDuration()
	expectedDuration := time.Hour * 24 * 7 // 7 days
	assert.Equal(t, expectedDuration, duration)
}
