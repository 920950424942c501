// Package config loads game settings from a YAML file, a .env file and the
// environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/hand-cricket/internal/console"
)

// DefaultFile is read when present; a missing default file is not an error
const DefaultFile = "hand-cricket.yaml"

// Config holds the game settings
type Config struct {
	// Seed fixes the computer's draws; 0 picks a random seed
	Seed        uint64 `yaml:"seed" env:"HAND_CRICKET_SEED"`
	OnInvalid   string `yaml:"on_invalid" env:"HAND_CRICKET_ON_INVALID"`
	ShowSummary bool   `yaml:"show_summary" env:"HAND_CRICKET_SUMMARY"`
	ShareQR     bool   `yaml:"share_qr" env:"HAND_CRICKET_SHARE_QR"`
	LogLevel    string `yaml:"log_level" env:"HAND_CRICKET_LOG_LEVEL"`
}

// Default returns the settings that reproduce the plain console game
func Default() *Config {
	return &Config{
		OnInvalid: string(console.PolicyAbort),
		LogLevel:  "warn",
	}
}

// Load builds a Config. An empty path means DefaultFile, which may be absent;
// an explicit path must be readable. Values from .env never override
// variables already set in the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, explicit := path, path != ""
	if !explicit {
		file = DefaultFile
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", file, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config %s: %w", file, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Policy returns the invalid-input policy
func (c *Config) Policy() (console.InvalidPolicy, error) {
	return console.ParsePolicy(c.OnInvalid)
}

// Level returns the slog level named by LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
