// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mixtape/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user together with an empty profile. The caller
	// supplies the already-hashed password digest; plaintext never reaches
	// this layer.
	Create(ctx context.Context, user *entity.User, passwordDigest string) error

	// ExistsByEmail reports whether an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindProfileByEmail retrieves the profile and stored password digest for
	// an email. Returns ErrUserNotFound when no account matches. The digest is
	// returned separately so it can be verified and discarded without ever
	// living on the entity.
	FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, string, error)

	// FindProfileByID retrieves a profile by user id.
	// Returns ErrUserNotFound when the id is unknown.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
