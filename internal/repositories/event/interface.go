package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/uxbn/hawkthorne/internal/repositories/event Repository

import (
	"context"

	"github.com/uxbn/hawkthorne/internal/models"
)

// Repository defines the interface for event data persistence
type Repository interface {
	// CreateEvent persists a new event and assigns its numeric ID
	CreateEvent(ctx context.Context, input *CreateEventInput) (*models.Event, error)

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)
}
