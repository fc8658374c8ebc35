// Package config loads process configuration from the environment. A
// local .env file is read first when present so development setups do
// not need exported variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingDiscordToken is returned when DISCORD_TOKEN is unset.
var ErrMissingDiscordToken = errors.New("DISCORD_TOKEN is required")

// Config holds everything the process reads from the environment.
type Config struct {
	// DiscordToken authenticates the bot with the Discord gateway
	DiscordToken string `env:"DISCORD_TOKEN"`

	// RedisAddr and RedisPassword locate the backing store
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// CommandPrefix is the chat prefix commands start with
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"$lfg"`

	// PromptTimeout bounds each creation wizard prompt
	PromptTimeout time.Duration `env:"PROMPT_TIMEOUT" envDefault:"60s"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (*Config, error) {
	// A missing .env file is not an error, only a failure to read one.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DiscordToken == "" {
		return nil, ErrMissingDiscordToken
	}

	return cfg, nil
}
