package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/uxbn/hawkthorne/internal/common/clock"
	"github.com/uxbn/hawkthorne/internal/models"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix = "event:"

	// Counter key for allocating numeric event IDs. The ID is printed
	// into the rendered summary as the Join ID, so it has to be a small
	// number a user can type back.
	nextEventIDKey = "event:next_id"
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock for timestamps
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed event repository
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

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  clk,
	}, nil
}

// CreateEvent persists a new event. The numeric ID comes from a Redis
// counter, so IDs are monotonically increasing and never reused.
func (r *redisRepository) CreateEvent(ctx context.Context, input *CreateEventInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Title == "" {
		return nil, errors.New("event title cannot be empty")
	}

	eventID, err := r.client.Incr(ctx, nextEventIDKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate event ID: %w", err)
	}

	event := &models.Event{
		ID:              eventID,
		Title:           input.Title,
		Description:     input.Description,
		StartDate:       input.StartDate,
		TimeZoneName:    input.TimeZoneName,
		TimeZoneOffset:  input.TimeZoneOffset,
		CreatedByUserID: input.CreatedByUserID,
		MaxPlayers:      input.MaxPlayers,
		CreatedAt:       r.clock.Now(),
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	eventKey := fmt.Sprintf("%s%d", eventKeyPrefix, event.ID)
	if err := r.client.Set(ctx, eventKey, eventJSON, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	return event, nil
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	eventKey := fmt.Sprintf("%s%d", eventKeyPrefix, input.EventID)
	eventJSON, err := r.client.Get(ctx, eventKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.Event
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}
