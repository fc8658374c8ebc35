package user

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/uxbn/hawkthorne/internal/repositories/user Repository

import (
	"context"

	"github.com/uxbn/hawkthorne/internal/models"
)

// Repository defines the interface for user data persistence
type Repository interface {
	// UpsertUser creates a user for an external identity, or refreshes
	// the display name if the user already exists
	UpsertUser(ctx context.Context, input *UpsertUserInput) (*models.User, error)

	// GetUser retrieves a user by store ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)
}
