package user

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
	userKeyPrefix     = "user:"
	externalKeyPrefix = "user_external:"
)

// ErrUserNotFound is returned when a user is not found
var ErrUserNotFound = errors.New("user not found")

// Config holds configuration for the Redis user repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock for timestamps
	Clock clock.Clock

	// UUID generator for user IDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client        *redis.Client
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed user repository
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

// UpsertUser creates or refreshes the user for an external identity.
// The external ID is the uniqueness boundary: repeated upserts for the
// same identity always resolve to the same user record.
func (r *redisRepository) UpsertUser(ctx context.Context, input *UpsertUserInput) (*models.User, error) {
	if input == nil || input.ExternalID == "" {
		return nil, errors.New("input and external ID cannot be empty")
	}

	externalKey := fmt.Sprintf("%s%s", externalKeyPrefix, input.ExternalID)
	userID, err := r.client.Get(ctx, externalKey).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to look up user by external ID: %w", err)
	}

	now := r.clock.Now()

	if err == redis.Nil {
		// First time we see this identity
		user := &models.User{
			ID:          r.uuidGenerator.NewUUID(),
			ExternalID:  input.ExternalID,
			DisplayName: input.DisplayName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		userJSON, err := json.Marshal(user)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal user: %w", err)
		}

		pipe := r.client.Pipeline()
		pipe.Set(ctx, fmt.Sprintf("%s%s", userKeyPrefix, user.ID), userJSON, 0)
		pipe.Set(ctx, externalKey, user.ID, 0)

		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to save user: %w", err)
		}

		return user, nil
	}

	user, err := r.GetUser(ctx, &GetUserInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	// Refresh the display name, best effort
	user.DisplayName = input.DisplayName
	user.UpdatedAt = now

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := r.client.Set(ctx, fmt.Sprintf("%s%s", userKeyPrefix, user.ID), userJSON, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by store ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userJSON, err := r.client.Get(ctx, fmt.Sprintf("%s%s", userKeyPrefix, input.UserID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}
