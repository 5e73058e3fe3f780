// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"context"
	"time"
)

// Movie is a catalog entry as seen by the engine. Genres carries the
// exact category labels; Overview is free text.
type Movie struct {
	// ID is the unique catalog identifier.
	ID int64 `json:"id"`

	// Title is the movie title (display only, never tokenized).
	Title string `json:"title"`

	// Genres is the list of category labels for this movie.
	Genres []string `json:"genres"`

	// Overview is the free-text description.
	Overview string `json:"overview"`

	// Year is the release year.
	Year int `json:"year"`

	// Popularity is a non-negative external popularity signal, used
	// for cold-start ranking and tie-breaking.
	Popularity float64 `json:"popularity"`
}

// Rating is one user's score for one movie, on a 0 to 5 scale. Values
// are validated at the API boundary; the engine trusts its input.
type Rating struct {
	UserID  int64   `json:"user_id"`
	MovieID int64   `json:"movie_id"`
	Value   float64 `json:"value"`
}

// ScoredMovie is one entry of a ranked recommendation list.
type ScoredMovie struct {
	MovieID int64   `json:"movie_id"`
	Score   float64 `json:"score"`
}

// Mode identifies how a recommendation list was scored.
type Mode int

const (
	// ModeContent scores candidates against the user's taste profile.
	ModeContent Mode = iota
	// ModePopularity ranks by popularity (cold start or degenerate
	// content scores).
	ModePopularity
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeContent:
		return "content"
	case ModePopularity:
		return "popularity"
	default:
		return "unknown"
	}
}

// Result is a full recommendation response from the engine.
type Result struct {
	// UserID is the user the list was generated for.
	UserID int64 `json:"user_id"`

	// Mode records how the list was scored.
	Mode Mode `json:"mode"`

	// Items is the ranked recommendation list, best first.
	Items []ScoredMovie `json:"items"`

	// SnapshotVersion identifies the corpus snapshot used.
	SnapshotVersion int64 `json:"snapshot_version"`

	// LatencyMS is the total scoring latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}

// Status reports the engine's current snapshot and rebuild state.
type Status struct {
	// SnapshotVersion is the version of the active snapshot, 0 when
	// no snapshot has been built yet.
	SnapshotVersion int64 `json:"snapshot_version"`

	// BuiltAt is when the active snapshot was built.
	BuiltAt time.Time `json:"built_at"`

	// MovieCount is the number of movies in the active snapshot.
	MovieCount int `json:"movie_count"`

	// FeaturelessCount is the number of movies with zero vectors.
	FeaturelessCount int `json:"featureless_count"`

	// TermCount is the size of the snapshot vocabulary.
	TermCount int `json:"term_count"`

	// Stale is true when a catalog mutation has been recorded since
	// the active snapshot was built.
	Stale bool `json:"stale"`

	// RebuildCount is the number of completed rebuilds.
	RebuildCount int64 `json:"rebuild_count"`

	// RequestCount is the number of recommendation requests served.
	RequestCount int64 `json:"request_count"`

	// LastRebuildDurationMS is the duration of the last rebuild.
	LastRebuildDurationMS int64 `json:"last_rebuild_duration_ms"`
}

// DataProvider supplies catalog and rating data to the engine. The
// database package implements it; tests use an in-memory fake.
type DataProvider interface {
	// GetMovies returns the full catalog. The engine rebuilds its
	// snapshot from this list as a whole; there is no incremental path.
	GetMovies(ctx context.Context) ([]Movie, error)

	// GetUserRatings returns all ratings by the given user. One entry
	// per (user, movie) pair.
	GetUserRatings(ctx context.Context, userID int64) ([]Rating, error)
}

// ContextCancelled reports whether ctx is done.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
