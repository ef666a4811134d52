// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mixtape/internal/domain/entity"
	"mixtape/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// proximityRepository implements the repository.ProximityRepository interface using GORM.
// Distance is evaluated inside PostgreSQL so one band scan is one query.
type proximityRepository struct {
	db *gorm.DB
}

// NewProximityRepository is the constructor for proximityRepository.
func NewProximityRepository(db *gorm.DB) repository.ProximityRepository {
	return &proximityRepository{
		db: db,
	}
}

// bandScanQuery filters to active listeners other than the caller whose
// planar distance from the caller's coordinates, computed directly on
// coordinate degrees, falls in the half-open band (lower, upper].
// Profiles without coordinates drop out via the NULL comparisons.
const bandScanQuery = `
SELECT profiles.user_id, users.email, profiles.first_name, profiles.last_name,
       profiles.avatar, profiles.likes, profiles.current_playing,
       profiles.latitude, profiles.longitude, profiles.updated_at
FROM profiles
JOIN users ON users.id = profiles.user_id
WHERE profiles.user_id <> ?
  AND profiles.current_playing IS NOT NULL
  AND sqrt(power(? - profiles.latitude, 2) + power(? - profiles.longitude, 2)) <= ?
  AND sqrt(power(? - profiles.latitude, 2) + power(? - profiles.longitude, 2)) > ?`

// ListenersWithinBand runs one band scan and maps the rows to domain profiles.
func (repo *proximityRepository) ListenersWithinBand(ctx context.Context, userID uuid.UUID, latitude, longitude, lower, upper float64) ([]*entity.Profile, error) {
	var rows []profileListRow

	if err := repo.db.WithContext(ctx).
		Raw(bandScanQuery,
			userID,
			latitude, longitude, upper,
			latitude, longitude, lower,
		).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to scan proximity band")
	}

	return toProfileList(rows), nil
}
