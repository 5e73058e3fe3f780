// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/reelist/reelist/internal/database"
	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/models"
	"github.com/reelist/reelist/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations/user/{userID}.
// Returns a ranked list of unrated movies for the user, content-based
// when the user has a taste profile and popularity-ranked otherwise.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := getInt64URLParam(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user ID", err)
		return
	}

	exists, err := h.db.UserExists(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if !exists {
		respondDomainError(w, database.ErrUserNotFound)
		return
	}

	limit, err := getIntParam(r, "limit", h.config.API.DefaultRecsLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_QUERY_PARAM", "limit must be an integer", err)
		return
	}

	start := time.Now()
	result, err := h.engine.Recommend(r.Context(), userID, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	metrics.RecordRecommendation(result.Mode.String(), time.Since(start))

	items, err := h.hydrateScored(r, result.Items)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int64("user_id", userID).
		Str("mode", result.Mode.String()).
		Int("items", len(items)).
		Msg("Recommendations served")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationsResponse{
			UserID:          userID,
			Mode:            result.Mode.String(),
			SnapshotVersion: result.SnapshotVersion,
			Items:           items,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: result.LatencyMS,
		},
	})
}

// RecommendationStatus handles GET /api/v1/recommendations/status.
// Exposes snapshot version, corpus counters, and rebuild statistics.
func (h *Handler) RecommendationStatus(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.engine.Status())
}

// hydrateScored resolves engine scores into full catalog entries.
// Movies deleted since the snapshot was built are skipped rather than
// failing the whole response.
func (h *Handler) hydrateScored(r *http.Request, scored []recommend.ScoredMovie) ([]models.RecommendationItem, error) {
	items := make([]models.RecommendationItem, 0, len(scored))
	for _, s := range scored {
		movie, err := h.db.GetMovie(r.Context(), s.MovieID)
		if errors.Is(err, database.ErrMovieNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, models.RecommendationItem{
			Movie: *movie,
			Score: s.Score,
		})
	}
	return items, nil
}
