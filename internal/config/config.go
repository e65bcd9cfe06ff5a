package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ModeMenu = "menu"
	ModeText = "text"
)

type Config struct {
	Environment string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string        `env:"LOG_LEVEL" envDefault:"warn"`
	LogFile     string        `env:"LOG_FILE"`
	Game        string        `env:"TALE_GAME"` // Built-in game name or path to a definition file
	Mode        string        `env:"TALE_MODE"` // "menu" or "text"; empty asks the player
	Seed        int64         `env:"TALE_SEED"` // 0 picks a random seed
	WrapWidth   int           `env:"TALE_WRAP" envDefault:"80"`
	Color       bool          `env:"TALE_COLOR" envDefault:"true"`
	IntroDelay  time.Duration `env:"TALE_INTRO_DELAY" envDefault:"1500ms"`

	LogLevel slog.Level // Parsed from LogLevelRaw
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses configuration from environment variables only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that env parsing cannot.
func (c *Config) Validate() error {
	switch c.Mode {
	case "", ModeMenu, ModeText:
	default:
		return fmt.Errorf("TALE_MODE must be %q or %q, got %q", ModeMenu, ModeText, c.Mode)
	}
	if c.WrapWidth < 0 {
		return fmt.Errorf("TALE_WRAP cannot be negative")
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
