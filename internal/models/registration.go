package models

import (
	"time"
)

// RegistrationType represents the state a participant holds for an event
type RegistrationType string

const (
	// RegistrationTypeConfirmed indicates a participant who intends to attend
	RegistrationTypeConfirmed RegistrationType = "confirmed"

	// RegistrationTypeTentative indicates a participant who may attend
	RegistrationTypeTentative RegistrationType = "tentative"
)

// Registration represents one user's standing on one event.
// At most one registration exists per (EventID, UserID) pair; setting a
// new type replaces the old registration rather than accumulating.
type Registration struct {
	// ID is a unique identifier for this registration
	ID string

	// EventID is the owning event
	EventID int64

	// UserID is the registered user
	UserID string

	// DisplayName is the user's display name captured at registration time
	DisplayName string

	// Type is the registration state
	Type RegistrationType

	// CreatedAt orders registrations within a type, earliest first
	CreatedAt time.Time
}
