package models

import (
	"time"
)

// Event represents a scheduled activity that users can register for
type Event struct {
	// ID is the numeric identifier assigned by the store on creation.
	// It doubles as the Join ID printed into the rendered summary.
	ID int64

	// Title is the activity name the event was created from
	Title string

	// Description is optional free text supplied by the creator
	Description string

	// StartDate is the absolute instant the event starts
	StartDate time.Time

	// TimeZoneName is the zone abbreviation the start date was given in
	TimeZoneName string

	// TimeZoneOffset is the zone's offset from UTC in minutes
	TimeZoneOffset int

	// CreatedByUserID is the store ID of the creating user
	CreatedByUserID string

	// MaxPlayers caps a confirmed group, 0 if uncapped
	MaxPlayers int

	// CreatedAt is when the event was created
	CreatedAt time.Time
}
