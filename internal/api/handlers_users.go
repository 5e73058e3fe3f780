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

// Users handles GET /api/v1/users.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	respondSuccess(w, http.StatusOK, users)
}

// UserGet handles GET /api/v1/users/{userID}.
func (h *Handler) UserGet(w http.ResponseWriter, r *http.Request) {
	userID, err := getInt64URLParam(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user ID", err)
		return
	}

	user, err := h.db.GetUser(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, user)
}

// UserCreate handles POST /api/v1/users.
func (h *Handler) UserCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	user, err := h.db.InsertUser(r.Context(), &req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int64("user_id", user.ID).
		Msg("User created")

	respondSuccess(w, http.StatusCreated, user)
}

// RatingUpsert handles PUT /api/v1/users/{userID}/ratings/{movieID}.
// Writing a rating for an already-rated movie replaces the previous
// value. Ratings never mark the snapshot stale: the index depends only
// on catalog content, and profiles are rebuilt per request.
func (h *Handler) RatingUpsert(w http.ResponseWriter, r *http.Request) {
	userID, err := getInt64URLParam(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "Invalid user ID", err)
		return
	}

	movieID, err := getInt64URLParam(r, "movieID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_MOVIE_ID", "Invalid movie ID", err)
		return
	}

	var req models.UpsertRatingRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	rating, err := h.db.UpsertRating(r.Context(), userID, movieID, req.Value)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int64("user_id", userID).
		Int64("movie_id", movieID).
		Float64("value", req.Value).
		Msg("Rating upserted")

	respondSuccess(w, http.StatusOK, rating)
}

// UserRatings handles GET /api/v1/users/{userID}/ratings.
func (h *Handler) UserRatings(w http.ResponseWriter, r *http.Request) {
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
		respondError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found", nil)
		return
	}

	ratings, err := h.db.GetUserRatings(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if ratings == nil {
		ratings = []models.Rating{}
	}
	respondSuccess(w, http.StatusOK, ratings)
}
