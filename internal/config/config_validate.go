// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package config

import (
	"fmt"
)

// Validate checks that the loaded configuration is usable. Called by
// Load after layering; fails fast on invalid values.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("database.threads must not be negative, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be at least 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must not be below api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.DefaultRecsLimit < 1 {
		return fmt.Errorf("api.default_recs_limit must be at least 1, got %d", c.API.DefaultRecsLimit)
	}
	if c.API.MaxRecsLimit < c.API.DefaultRecsLimit {
		return fmt.Errorf("api.max_recs_limit (%d) must not be below api.default_recs_limit (%d)",
			c.API.MaxRecsLimit, c.API.DefaultRecsLimit)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	// A boost of exactly 1 would let overview word overlap drown out
	// shared genres.
	if c.Recommend.GenreBoost <= 1.0 {
		return fmt.Errorf("recommend.genre_boost must be greater than 1, got %g", c.Recommend.GenreBoost)
	}
	if c.Recommend.NeutralRating < 0 || c.Recommend.NeutralRating > 5 {
		return fmt.Errorf("recommend.neutral_rating must be within [0, 5], got %g", c.Recommend.NeutralRating)
	}
	if c.Recommend.RebuildInterval <= 0 {
		return fmt.Errorf("recommend.rebuild_interval must be positive, got %s", c.Recommend.RebuildInterval)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
