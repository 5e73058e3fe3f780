// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"

	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/models"
)

// Movies handles GET /api/v1/movies.
// Returns one page of the catalog ordered by ID.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	requested, err := getIntParam(r, "limit", h.config.API.DefaultPageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_QUERY_PARAM", "limit must be an integer", err)
		return
	}
	limit := clampPageSize(requested, h.config.API.MaxPageSize)

	offset, err := getIntParam(r, "offset", 0)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_QUERY_PARAM", "offset must be an integer", err)
		return
	}
	if offset < 0 {
		offset = 0
	}

	movies, total, err := h.db.ListMovies(r.Context(), limit, offset)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, models.MovieListResponse{
		Movies: movies,
		Pagination: models.PaginationInfo{
			Limit:      limit,
			Offset:     offset,
			TotalCount: int(total),
			HasMore:    int64(offset+len(movies)) < total,
		},
	})
}

// MovieGet handles GET /api/v1/movies/{movieID}.
func (h *Handler) MovieGet(w http.ResponseWriter, r *http.Request) {
	movieID, err := getInt64URLParam(r, "movieID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	movie, err := h.db.GetMovie(r.Context(), movieID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, movie)
}

// MovieCreate handles POST /api/v1/movies.
// A successful insert marks the recommendation snapshot stale; the next
// rebuild picks the new movie up.
func (h *Handler) MovieCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMovieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	movie, err := h.db.InsertMovie(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	h.engine.MarkStale()

	logging.Ctx(r.Context()).Info().
		Int64("movie_id", movie.ID).
		Str("title", sanitizeLogValue(movie.Title)).
		Msg("Movie created")

	respondSuccess(w, http.StatusCreated, movie)
}

// MovieDelete handles DELETE /api/v1/movies/{movieID}.
// Deletes the movie and its ratings, then marks the snapshot stale.
func (h *Handler) MovieDelete(w http.ResponseWriter, r *http.Request) {
	movieID, err := getInt64URLParam(r, "movieID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	if err := h.db.DeleteMovie(r.Context(), movieID); err != nil {
		respondDomainError(w, err)
		return
	}

	h.engine.MarkStale()

	logging.Ctx(r.Context()).Info().
		Int64("movie_id", movieID).
		Msg("Movie deleted")

	w.WriteHeader(http.StatusNoContent)
}

// MovieSimilar handles GET /api/v1/movies/{movieID}/similar.
// Returns catalog entries ranked by cosine similarity to the given
// movie, most similar first.
func (h *Handler) MovieSimilar(w http.ResponseWriter, r *http.Request) {
	movieID, err := getInt64URLParam(r, "movieID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	requested, err := getIntParam(r, "limit", h.config.API.DefaultRecsLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_QUERY_PARAM", "limit must be an integer", err)
		return
	}
	limit := clampPageSize(requested, h.config.API.MaxRecsLimit)

	// Distinguish an unknown movie from one with no similar titles.
	if _, err := h.db.GetMovie(r.Context(), movieID); err != nil {
		respondDomainError(w, err)
		return
	}

	scored, err := h.engine.SimilarMovies(r.Context(), movieID, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items, err := h.hydrateScored(r, scored)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, items)
}
