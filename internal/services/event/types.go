package event

import (
	"time"

	"github.com/uxbn/hawkthorne/internal/models"
	eventRepo "github.com/uxbn/hawkthorne/internal/repositories/event"
	registrationRepo "github.com/uxbn/hawkthorne/internal/repositories/registration"
	userRepo "github.com/uxbn/hawkthorne/internal/repositories/user"
)

// Config holds configuration for the event service
type Config struct {
	// Repository dependencies
	EventRepo        eventRepo.Repository
	UserRepo         userRepo.Repository
	RegistrationRepo registrationRepo.Repository
}

type CreateEventInput struct {
	// Title is the activity name chosen in the wizard
	Title string

	// Description is optional free text
	Description string

	// StartDate is the event start instant
	StartDate time.Time

	// TimeZoneName and TimeZoneOffset describe the zone the start date
	// was given in
	TimeZoneName   string
	TimeZoneOffset int

	// MaxPlayers caps a confirmed group, 0 if uncapped
	MaxPlayers int

	// CreatorExternalID and CreatorDisplayName identify the initiating
	// chat user
	CreatorExternalID  string
	CreatorDisplayName string
}

type CreateEventOutput struct {
	Event *models.Event
}

type GetSummaryInput struct {
	EventID int64
}

type GetSummaryOutput struct {
	Summary *Summary
}

// Summary is everything a renderer needs to draw one event message
type Summary struct {
	Event *models.Event

	// CreatorName is the creator's display name, empty if unknown
	CreatorName string

	// ConfirmedGroups holds the capacity-bounded groups of confirmed
	// attendees in join order; always at least one group
	ConfirmedGroups []*AttendeeGroup

	// Tentative holds tentative registrations in join order
	Tentative []*models.Registration
}

// AttendeeGroup is one capacity-bounded group of confirmed attendees
type AttendeeGroup struct {
	// Label is "Full" for a filled group, otherwise "<count>/<max>"
	// ("<count>" when the event has no player cap)
	Label string

	// Members in registration order, first joined first
	Members []*models.Registration
}

type SetRegistrationInput struct {
	EventID     int64
	ExternalID  string
	DisplayName string
	Type        models.RegistrationType
}

type SetRegistrationOutput struct {
	Registration *models.Registration
}

type RemoveRegistrationInput struct {
	EventID     int64
	ExternalID  string
	DisplayName string
}

type RemoveRegistrationOutput struct {
}
