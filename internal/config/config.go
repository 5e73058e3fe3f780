// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package config loads and validates the service configuration.
//
// Configuration is layered with koanf v2:
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config file: optional YAML file (config.yaml) for persistent settings
//  3. Environment variables: override any setting (highest precedence)
//
// The config file is discovered via REELIST_CONFIG_PATH or the
// well-known paths in DefaultConfigPaths.
package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig controls the DuckDB store.
//
// Path may be ":memory:" for an ephemeral database (used in tests).
// Threads 0 means runtime.NumCPU().
type DatabaseConfig struct {
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"`
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// APIConfig controls paging and limit behavior of the HTTP API.
type APIConfig struct {
	DefaultPageSize  int `koanf:"default_page_size"`
	MaxPageSize      int `koanf:"max_page_size"`
	DefaultRecsLimit int `koanf:"default_recs_limit"`
	MaxRecsLimit     int `koanf:"max_recs_limit"`
}

// RecommendConfig controls the recommendation engine.
//
// GenreBoost multiplies genre term weights and must be greater than 1
// so a shared genre outweighs incidental overview word overlap.
// NeutralRating is the pivot for signed rating weights.
type RecommendConfig struct {
	GenreBoost      float64       `koanf:"genre_boost"`
	NeutralRating   float64       `koanf:"neutral_rating"`
	RebuildInterval time.Duration `koanf:"rebuild_interval"`
	RebuildOnStart  bool          `koanf:"rebuild_on_start"`
}

// SecurityConfig controls CORS and rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig controls the logging package.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads, layers and validates the full configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
