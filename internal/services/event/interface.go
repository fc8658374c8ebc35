package event

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/uxbn/hawkthorne/internal/services/event Service

import "context"

// Service defines the interface for event and registration operations
type Service interface {
	// CreateEvent persists a new event and auto-registers its creator
	// as confirmed
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// GetSummary returns an event together with its grouped attendees,
	// ready for rendering
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// SetRegistration records a user's standing on an event, replacing
	// any prior registration
	SetRegistration(ctx context.Context, input *SetRegistrationInput) (*SetRegistrationOutput, error)

	// RemoveRegistration removes a user's registration from an event
	RemoveRegistration(ctx context.Context, input *RemoveRegistrationInput) (*RemoveRegistrationOutput, error)
}
