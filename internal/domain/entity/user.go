// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity: one row per account.
// The password digest lives on the persistence model only and is stripped
// before an entity crosses the repository boundary.
type User struct {
	ID        uuid.UUID // The unique identifier for the account, generated at creation.
	Email     string    // The login identifier; unique across all accounts.
	Profile   *Profile  // The 1:1 profile created together with the account.
	CreatedAt time.Time // Timestamp of account creation.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Profile holds the mutable, social-facing state of an account.
// Likes is a denormalized counter maintained by the engagement store;
// CurrentPlaying and the coordinates are nil until first set.
type Profile struct {
	UserID         uuid.UUID // Foreign key linking this profile to its User.
	Email          string    // Denormalized from User for listing convenience.
	FirstName      string
	LastName       string
	Avatar         string
	Likes          int       // Total likes received; never negative.
	CurrentPlaying *string   // Song currently playing, nil when not listening.
	Latitude       *float64  // Last reported latitude, nil until SetLocation.
	Longitude      *float64  // Last reported longitude, nil until SetLocation.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// IsListening reports whether the profile has a non-nil now-playing song,
// which is the activity filter for proximity discovery.
func (p *Profile) IsListening() bool {
	return p != nil && p.CurrentPlaying != nil
}

// HasLocation reports whether both coordinates have been set.
func (p *Profile) HasLocation() bool {
	return p != nil && p.Latitude != nil && p.Longitude != nil
}
