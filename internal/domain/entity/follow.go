package entity

import (
	"time"

	"github.com/google/uuid"
)

// FollowEdge is a directed edge in the social graph: UserID follows
// FollowingUserID. The pair is unique at the store level, so following the
// same user twice is a no-op rather than a duplicate edge.
type FollowEdge struct {
	UserID          uuid.UUID
	FollowingUserID uuid.UUID
	CreatedAt       time.Time
}
