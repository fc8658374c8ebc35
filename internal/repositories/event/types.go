package event

import (
	"time"
)

type CreateEventInput struct {
	Title           string
	Description     string
	StartDate       time.Time
	TimeZoneName    string
	TimeZoneOffset  int
	CreatedByUserID string
	MaxPlayers      int
}

type GetEventInput struct {
	EventID int64
}
