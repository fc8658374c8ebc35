package registration

import (
	"github.com/uxbn/hawkthorne/internal/models"
)

type SetRegistrationInput struct {
	EventID     int64
	UserID      string
	DisplayName string
	Type        models.RegistrationType
}

type DeleteRegistrationInput struct {
	EventID int64
	UserID  string
}

type ListRegistrationsInput struct {
	EventID int64
}
