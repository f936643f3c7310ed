// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Start modes.
const (
	StartNew    = "new"    // fresh country
	StartLoad   = "load"   // ruler types in the values of an interrupted game
	StartResume = "resume" // continue the last autosave
)

// Config is the process configuration.
type Config struct {
	DBPath     string `env:"KING_DB_PATH" envDefault:"data/king.db"`
	TuningPath string `env:"KING_TUNING_PATH"`
	Seed       int64  `env:"KING_SEED" envDefault:"0"`
	LogLevel   string `env:"KING_LOG_LEVEL" envDefault:"warn"`
	Start      string `env:"KING_START" envDefault:"new"`
	Autosave   bool   `env:"KING_AUTOSAVE" envDefault:"true"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.Start = strings.ToLower(strings.TrimSpace(cfg.Start))
	switch cfg.Start {
	case StartNew, StartLoad, StartResume:
	default:
		return cfg, fmt.Errorf("KING_START must be %q, %q or %q, got %q", StartNew, StartLoad, StartResume, cfg.Start)
	}
	if cfg.Start == StartResume && cfg.DBPath == "" {
		return cfg, fmt.Errorf("KING_START=resume needs KING_DB_PATH")
	}
	return cfg, nil
}

// Level maps LogLevel onto a slog level, defaulting to warn.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
