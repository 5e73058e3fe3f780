// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"errors"
	"net/http"

	"github.com/reelist/reelist/internal/database"
	"github.com/reelist/reelist/internal/recommend"
)

// respondDomainError maps sentinel errors from the database and
// recommendation layers to HTTP responses. Unrecognized errors become
// opaque 500s so internals never leak to clients.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found", nil)
	case errors.Is(err, database.ErrMovieNotFound):
		respondError(w, http.StatusNotFound, "MOVIE_NOT_FOUND", "Movie not found", nil)
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
	case errors.Is(err, recommend.ErrInvalidLimit):
		respondError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be a positive integer within the configured maximum", nil)
	case errors.Is(err, recommend.ErrNoSnapshot):
		respondError(w, http.StatusServiceUnavailable, "ENGINE_NOT_READY", "Recommendation engine has no snapshot yet", err)
	case errors.Is(err, recommend.ErrNoProvider):
		respondError(w, http.StatusServiceUnavailable, "ENGINE_NOT_READY", "Recommendation engine is not configured", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
	}
}
