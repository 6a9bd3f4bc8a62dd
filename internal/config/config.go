package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, read from the environment
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the backend: "memory" or "redis"
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// NoteCompletionXP is the XP granted for completing a note
	NoteCompletionXP int `env:"NOTE_COMPLETION_XP" envDefault:"25"`

	// ChatHistoryMax caps the stored chat history (redis backend)
	ChatHistoryMax int `env:"CHAT_HISTORY_MAX" envDefault:"500"`
}

// Load parses the configuration from environment variables
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level to a slog.Level.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
