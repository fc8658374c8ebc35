package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/uxbn/hawkthorne/internal/common/clock"
	"github.com/uxbn/hawkthorne/internal/common/uuid"
	"github.com/uxbn/hawkthorne/internal/models"
)

const (
	// Key prefixes for Redis
	registrationKeyPrefix = "registration:"
	eventMembersKeyPrefix = "event_registrations:"
)

// Config holds configuration for the Redis registration repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock for timestamps
	Clock clock.Clock

	// UUID generator for registration IDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed registration repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		clock:         clk,
		uuidGenerator: uuidGenerator,
	}, nil
}

func registrationKey(eventID int64, userID string) string {
	return fmt.Sprintf("%s%d:%s", registrationKeyPrefix, eventID, userID)
}

func eventMembersKey(eventID int64) string {
	return fmt.Sprintf("%s%d", eventMembersKeyPrefix, eventID)
}

// SetRegistration records the user's standing on an event. The record
// key is derived from the (event, user) pair, so a re-set overwrites in
// place and duplicates cannot accumulate. The member score in the event
// set is refreshed, which moves a re-registering user to the back of the
// join order, matching the behavior of deleting and re-inserting.
func (r *redisRepository) SetRegistration(ctx context.Context, input *SetRegistrationInput) (*models.Registration, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Type != models.RegistrationTypeConfirmed && input.Type != models.RegistrationTypeTentative {
		return nil, fmt.Errorf("unknown registration type: %s", input.Type)
	}

	reg := &models.Registration{
		ID:          r.uuidGenerator.NewUUID(),
		EventID:     input.EventID,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
		Type:        input.Type,
		CreatedAt:   r.clock.Now(),
	}

	regJSON, err := json.Marshal(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, registrationKey(input.EventID, input.UserID), regJSON, 0)
	pipe.ZAdd(ctx, eventMembersKey(input.EventID), redis.Z{
		Score:  float64(reg.CreatedAt.UnixMilli()),
		Member: input.UserID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save registration: %w", err)
	}

	return reg, nil
}

// DeleteRegistration removes the user's registration for an event. A
// missing registration is not an error, which keeps redelivered leave
// gestures harmless.
func (r *redisRepository) DeleteRegistration(ctx context.Context, input *DeleteRegistrationInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, registrationKey(input.EventID, input.UserID))
	pipe.ZRem(ctx, eventMembersKey(input.EventID), input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	return nil
}

// ListRegistrations returns the event's registrations ordered by
// creation time, earliest first.
func (r *redisRepository) ListRegistrations(ctx context.Context, input *ListRegistrationsInput) ([]*models.Registration, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	userIDs, err := r.client.ZRange(ctx, eventMembersKey(input.EventID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get registration members: %w", err)
	}

	if len(userIDs) == 0 {
		return []*models.Registration{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(userIDs))
	for _, userID := range userIDs {
		commands = append(commands, pipe.Get(ctx, registrationKey(input.EventID, userID)))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}

	registrations := make([]*models.Registration, 0, len(userIDs))
	for i, cmd := range commands {
		regJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Member removed between the range and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get registration for %s: %w", userIDs[i], err)
		}

		var reg models.Registration
		if err := json.Unmarshal([]byte(regJSON), &reg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal registration for %s: %w", userIDs[i], err)
		}

		registrations = append(registrations, &reg)
	}

	return registrations, nil
}
