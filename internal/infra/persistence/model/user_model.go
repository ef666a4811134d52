// Package model contains the GORM-specific structs that mirror the relational
// schema. Entities never cross this boundary; repositories map both ways.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are random (v4) UUIDs generated by
// the application at creation time.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordDigest string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table, 1:1 with users. The likes
// counter is denormalized and guarded by a non-negative check constraint;
// current_playing and the coordinates stay NULL until first set.
type ProfileModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"type:varchar(100)"`
	LastName       string    `gorm:"type:varchar(100)"`
	Avatar         string    `gorm:"type:varchar(255)"`
	Likes          int       `gorm:"not null;default:0;check:likes >= 0"`
	CurrentPlaying *string   `gorm:"type:varchar(255)"`
	Latitude       *float64  `gorm:"type:double precision"`
	Longitude      *float64  `gorm:"type:double precision"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
