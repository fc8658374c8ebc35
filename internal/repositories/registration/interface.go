package registration

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/uxbn/hawkthorne/internal/repositories/registration Repository

import (
	"context"

	"github.com/uxbn/hawkthorne/internal/models"
)

// Repository defines the interface for registration data persistence.
// The store guarantees at most one registration per (event, user) pair.
type Repository interface {
	// SetRegistration records the user's standing on an event, replacing
	// any prior registration for the pair
	SetRegistration(ctx context.Context, input *SetRegistrationInput) (*models.Registration, error)

	// DeleteRegistration removes the user's registration for an event,
	// a no-op when none exists
	DeleteRegistration(ctx context.Context, input *DeleteRegistrationInput) error

	// ListRegistrations returns an event's registrations ordered by
	// creation time, earliest first
	ListRegistrations(ctx context.Context, input *ListRegistrationsInput) ([]*models.Registration, error)
}
