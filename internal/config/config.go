package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the example programs.
type Config struct {
	LogLevel     zerolog.Level // Minimum level written by the global logger
	Port         string        // Port for the visualisation server
	BoardWidth   int           // Board width in tiles
	BoardHeight  int           // Board height in tiles
	SnakeLength  int           // Initial snake length
	Lookahead    int           // Tail lookahead for the fallback query
	Ticks        int           // Tick cap for a headless game, 0 means until it ends
	TickInterval time.Duration // Pause between ticks
	Seed         uint64        // Seed for food placement and wall generation
	Workers      int           // Worker goroutines for batch searches
}

// Load reads a .env file if present and then the environment.
func Load() (Config, error) {
	// a missing .env file is fine, the environment may carry everything
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf(".env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (Config, error) {
	var (
		config Config
		err    error
	)

	config.LogLevel, err = zerolog.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	config.Port = getEnvWithDefault("PORT", "8080")

	ints := []struct {
		key          string
		defaultValue int
		target       *int
		minimum      int
	}{
		{"BOARD_WIDTH", 20, &config.BoardWidth, 2},
		{"BOARD_HEIGHT", 15, &config.BoardHeight, 1},
		{"SNAKE_LENGTH", 3, &config.SnakeLength, 1},
		{"LOOKAHEAD", 2, &config.Lookahead, 0},
		{"TICKS", 0, &config.Ticks, 0},
		{"WORKERS", 4, &config.Workers, 1},
	}
	for _, entry := range ints {
		value, err := getEnvAsInt(entry.key, entry.defaultValue)
		if err != nil {
			return Config{}, err
		}
		if value < entry.minimum {
			return Config{}, fmt.Errorf("%s must be at least %d, got %d", entry.key, entry.minimum, value)
		}
		*entry.target = value
	}

	config.TickInterval, err = time.ParseDuration(getEnvWithDefault("TICK_INTERVAL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("TICK_INTERVAL: %w", err)
	}

	config.Seed, err = strconv.ParseUint(getEnvWithDefault("SEED", "1"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("SEED: %w", err)
	}
	return config, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, falling back to a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
