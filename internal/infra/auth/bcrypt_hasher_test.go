package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"mixtape/config"
)

func newTestHasher() *bcryptHasher {
	// Lower cost keeps the test suite fast.
	return NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "correct horse battery staple"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: customCost},
	})

	hash, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_DefaultCostFallback(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *config.Config
	}{
		{"nil config", nil},
		{"nil auth section", &config.Config{}},
		{"cost below minimum", &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost - 1}}},
		{"cost above maximum", &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MaxCost + 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tc.cfg).(*bcryptHasher)
			assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
		})
	}
}
