// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package models

import (
	"strings"
	"time"
)

// Movie is a catalog entry. Genres is stored as a comma-separated string
// in DuckDB and exposed as a list over the API via GenreList.
type Movie struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Genres     string  `json:"genres"`
	Overview   string  `json:"overview"`
	Year       int     `json:"year"`
	PosterURL  string  `json:"poster_url,omitempty"`
	Popularity float64 `json:"popularity"`
}

// GenreList splits the stored CSV genre string into trimmed labels,
// dropping empty entries.
func (m *Movie) GenreList() []string {
	if m.Genres == "" {
		return nil
	}
	parts := strings.Split(m.Genres, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// User is a catalog account that can rate movies.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating is one user's score for one movie. The (UserID, MovieID) pair
// is unique; writing a second rating for the same pair replaces the
// first. Value is validated into [0, 5] at the HTTP boundary.
type Rating struct {
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMovieRequest is the payload for POST /api/v1/movies.
type CreateMovieRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=500"`
	Genres     []string `json:"genres" validate:"omitempty,dive,min=1,max=100"`
	Overview   string   `json:"overview" validate:"omitempty,max=10000"`
	Year       int      `json:"year" validate:"omitempty,gte=1870,lte=2100"`
	PosterURL  string   `json:"poster_url" validate:"omitempty,url,max=2000"`
	Popularity float64  `json:"popularity" validate:"omitempty,gte=0"`
}

// CreateUserRequest is the payload for POST /api/v1/users.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpsertRatingRequest is the payload for
// PUT /api/v1/users/{userID}/ratings/{movieID}.
type UpsertRatingRequest struct {
	Value float64 `json:"value" validate:"gte=0,lte=5"`
}

// MovieListResponse wraps a paginated catalog listing.
type MovieListResponse struct {
	Movies     []Movie        `json:"movies"`
	Pagination PaginationInfo `json:"pagination"`
}

// RecommendationItem is one ranked entry in a recommendation response.
type RecommendationItem struct {
	Movie Movie   `json:"movie"`
	Score float64 `json:"score"`
}

// RecommendationsResponse is the payload for
// GET /api/v1/recommendations/user/{userID}.
//
// Mode is "content" when scores come from the user's taste profile and
// "popularity" for cold-start fallback.
type RecommendationsResponse struct {
	UserID          int64                `json:"user_id"`
	Mode            string               `json:"mode"`
	SnapshotVersion int64                `json:"snapshot_version"`
	Items           []RecommendationItem `json:"items"`
}
