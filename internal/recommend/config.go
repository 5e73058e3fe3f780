// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"fmt"
)

// Config holds the tunable parameters of the engine. DefaultConfig
// matches the service defaults in internal/config.
type Config struct {
	// GenreBoost multiplies the weight of genre terms. Must be greater
	// than 1 so a shared genre outweighs incidental overview overlap.
	GenreBoost float64 `json:"genre_boost"`

	// NeutralRating is the pivot for signed rating weights. Ratings
	// above it push a movie's vector into the profile, ratings below
	// it push away, a rating exactly at it contributes nothing.
	NeutralRating float64 `json:"neutral_rating"`

	// MaxLimit caps the number of items a single request may ask for.
	MaxLimit int `json:"max_limit"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		GenreBoost:    2.0,
		NeutralRating: 2.5,
		MaxLimit:      100,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.GenreBoost <= 1.0 {
		return fmt.Errorf("genre boost must be greater than 1, got %g", c.GenreBoost)
	}
	if c.NeutralRating < 0 || c.NeutralRating > 5 {
		return fmt.Errorf("neutral rating must be within [0, 5], got %g", c.NeutralRating)
	}
	if c.MaxLimit < 1 {
		return fmt.Errorf("max limit must be at least 1, got %d", c.MaxLimit)
	}
	return nil
}
