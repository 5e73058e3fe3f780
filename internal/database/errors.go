// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package database

import (
	"errors"
	"io"

	"github.com/reelist/reelist/internal/logging"
)

// Sentinel errors returned by CRUD methods. Callers map these to HTTP
// status codes without inspecting error strings.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("database: record not found")

	// ErrUserNotFound is returned when a rating or recommendation request
	// references a user that does not exist.
	ErrUserNotFound = errors.New("database: user not found")

	// ErrMovieNotFound is returned when a rating references a movie that
	// does not exist.
	ErrMovieNotFound = errors.New("database: movie not found")
)

// closeWithLog closes a resource and logs any error.
// Use this for cleanup operations where errors should be acknowledged but not fail the operation.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
