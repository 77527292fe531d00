package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/dungeontower/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed        = "DUNGEONTOWER_SEED"
	EnvRooms       = "DUNGEONTOWER_ROOMS"
	EnvMaxAttempts = "DUNGEONTOWER_MAX_ATTEMPTS"
	EnvLogFile     = "DUNGEONTOWER_LOG_FILE"
)

// Config holds viewer configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Rooms is how many rooms to attach to the root at startup.
	Rooms int

	// MaxAttempts caps placement retries per room.
	MaxAttempts int

	// LogFile receives logs while the terminal is in use. Empty disables logging.
	LogFile string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Rooms:       12,
		MaxAttempts: world.DefaultMaxAttempts,
	}
}

// LoadConfig reads settings through getenv (usually os.Getenv), keeping
// defaults for unset variables.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := getenv(EnvRooms); v != "" {
		rooms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvRooms, err)
		}
		if rooms < 0 {
			return cfg, fmt.Errorf("%s must not be negative, got %d", EnvRooms, rooms)
		}
		cfg.Rooms = rooms
	}

	if v := getenv(EnvMaxAttempts); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvMaxAttempts, err)
		}
		if attempts <= 0 {
			return cfg, fmt.Errorf("%s must be positive, got %d", EnvMaxAttempts, attempts)
		}
		cfg.MaxAttempts = attempts
	}

	cfg.LogFile = getenv(EnvLogFile)
	return cfg, nil
}

// WorldConfig returns the generation limits for this configuration.
func (c Config) WorldConfig() world.Config {
	wc := world.DefaultConfig()
	if c.MaxAttempts > 0 {
		wc.MaxAttempts = c.MaxAttempts
	}
	return wc
}
