package models

import (
	"time"
)

// User represents a chat user known to the store
type User struct {
	// ID is the unique identifier assigned by the store
	ID string

	// ExternalID is the Discord user ID, unique per user
	ExternalID string

	// DisplayName is the user's display name as of the last upsert.
	// It is best effort and may go stale between interactions.
	DisplayName string

	// CreatedAt is when the user was first seen
	CreatedAt time.Time

	// UpdatedAt is when the user was last upserted
	UpdatedAt time.Time
}
