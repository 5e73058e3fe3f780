// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"errors"
)

var (
	// ErrNoProvider is returned when the engine is used before a data
	// provider has been set.
	ErrNoProvider = errors.New("recommend: data provider not set")

	// ErrNoSnapshot is returned when no corpus snapshot could be
	// built, typically because the initial rebuild failed.
	ErrNoSnapshot = errors.New("recommend: no corpus snapshot available")

	// ErrInvalidLimit is returned for non-positive or over-cap limits.
	// Callers are expected to reject these at the HTTP boundary; the
	// engine never silently substitutes a default.
	ErrInvalidLimit = errors.New("recommend: invalid limit")

	// ErrRebuildInProgress is returned when an explicit rebuild is
	// requested while another rebuild already holds the lock.
	ErrRebuildInProgress = errors.New("recommend: rebuild already in progress")
)
