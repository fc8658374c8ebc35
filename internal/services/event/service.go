package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/uxbn/hawkthorne/internal/models"
	eventRepo "github.com/uxbn/hawkthorne/internal/repositories/event"
	registrationRepo "github.com/uxbn/hawkthorne/internal/repositories/registration"
	userRepo "github.com/uxbn/hawkthorne/internal/repositories/user"
)

// service implements the Service interface
type service struct {
	eventRepo        eventRepo.Repository
	userRepo         userRepo.Repository
	registrationRepo registrationRepo.Repository
}

// New creates a new event service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.UserRepo == nil {
		return nil, ErrNilUserRepo
	}

	if cfg.RegistrationRepo == nil {
		return nil, ErrNilRegistrationRepo
	}

	return &service{
		eventRepo:        cfg.EventRepo,
		userRepo:         cfg.UserRepo,
		registrationRepo: cfg.RegistrationRepo,
	}, nil
}

// CreateEvent persists a new event and auto-registers its creator as
// confirmed, so a fresh event always has one attendee.
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	creator, err := s.userRepo.UpsertUser(ctx, &userRepo.UpsertUserInput{
		ExternalID:  input.CreatorExternalID,
		DisplayName: input.CreatorDisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert creator: %w", err)
	}

	created, err := s.eventRepo.CreateEvent(ctx, &eventRepo.CreateEventInput{
		Title:           input.Title,
		Description:     input.Description,
		StartDate:       input.StartDate,
		TimeZoneName:    input.TimeZoneName,
		TimeZoneOffset:  input.TimeZoneOffset,
		CreatedByUserID: creator.ID,
		MaxPlayers:      input.MaxPlayers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	_, err = s.registrationRepo.SetRegistration(ctx, &registrationRepo.SetRegistrationInput{
		EventID:     created.ID,
		UserID:      creator.ID,
		DisplayName: creator.DisplayName,
		Type:        models.RegistrationTypeConfirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register creator: %w", err)
	}

	return &CreateEventOutput{
		Event: created,
	}, nil
}

// GetSummary returns the event with its registrations grouped for
// rendering.
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ev, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	registrations, err := s.registrationRepo.ListRegistrations(ctx, &registrationRepo.ListRegistrationsInput{
		EventID: ev.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	// The list is ordered by creation time, so the partition preserves
	// join order within each type.
	var confirmed, tentative []*models.Registration
	for _, reg := range registrations {
		switch reg.Type {
		case models.RegistrationTypeConfirmed:
			confirmed = append(confirmed, reg)
		case models.RegistrationTypeTentative:
			tentative = append(tentative, reg)
		}
	}

	creatorName := ""
	creator, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: ev.CreatedByUserID,
	})
	if err != nil {
		if !errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, err
		}
	} else {
		creatorName = creator.DisplayName
	}

	return &GetSummaryOutput{
		Summary: &Summary{
			Event:           ev,
			CreatorName:     creatorName,
			ConfirmedGroups: groupConfirmed(confirmed, ev.MaxPlayers),
			Tentative:       tentative,
		},
	}, nil
}

// SetRegistration records the user's standing on an event. The store
// replaces any prior registration for the (event, user) pair, so this is
// idempotent and safe under redelivered reaction events.
func (s *service) SetRegistration(ctx context.Context, input *SetRegistrationInput) (*SetRegistrationOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	_, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	registrant, err := s.userRepo.UpsertUser(ctx, &userRepo.UpsertUserInput{
		ExternalID:  input.ExternalID,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	reg, err := s.registrationRepo.SetRegistration(ctx, &registrationRepo.SetRegistrationInput{
		EventID:     input.EventID,
		UserID:      registrant.ID,
		DisplayName: registrant.DisplayName,
		Type:        input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set registration: %w", err)
	}

	return &SetRegistrationOutput{
		Registration: reg,
	}, nil
}

// RemoveRegistration removes the user's registration. Removing a user
// who never registered is a no-op.
func (s *service) RemoveRegistration(ctx context.Context, input *RemoveRegistrationInput) (*RemoveRegistrationOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	_, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	registrant, err := s.userRepo.UpsertUser(ctx, &userRepo.UpsertUserInput{
		ExternalID:  input.ExternalID,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	err = s.registrationRepo.DeleteRegistration(ctx, &registrationRepo.DeleteRegistrationInput{
		EventID: input.EventID,
		UserID:  registrant.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete registration: %w", err)
	}

	return &RemoveRegistrationOutput{}, nil
}
