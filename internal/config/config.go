// Package config loads CLI defaults from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"

	"github.com/bjaus/fixtab"
)

// Config holds settings that command-line flags may override.
type Config struct {
	// LogLevel is the minimum log level: debug, info, warn, error. ENV: HOTELS_LOG_LEVEL
	LogLevel string `env:"HOTELS_LOG_LEVEL,default=info"`
	// LogFormat is text or json. ENV: HOTELS_LOG_FORMAT
	LogFormat string `env:"HOTELS_LOG_FORMAT,default=text"`
	// Format is the report output format. ENV: HOTELS_FORMAT
	Format string `env:"HOTELS_FORMAT,default=table"`
	// DataDir holds hotels.txt and travelers.txt. ENV: HOTELS_DATA_DIR
	DataDir string `env:"HOTELS_DATA_DIR,default=."`
}

// Load reads the optional dotenv files, then the environment, and validates
// the result. Variables already set in the environment win over the files;
// files that do not exist are skipped.
func Load(dotenv ...string) (Config, error) {
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config dotenv %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks values that have a fixed set of choices.
func (c Config) Validate() error {
	if _, err := fixtab.ParseFormat(c.Format); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// HotelsPath returns the default hotels file.
func (c Config) HotelsPath() string { return filepath.Join(c.DataDir, "hotels.txt") }

// TravelersPath returns the default travelers file.
func (c Config) TravelersPath() string { return filepath.Join(c.DataDir, "travelers.txt") }
