// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/recommend"
)

// CatalogProvider adapts the database to the recommendation engine's
// DataProvider interface. The engine works on its own value types, so
// this adapter is the only place where stored rows and engine inputs
// meet.
type CatalogProvider struct {
	db *DB
}

// NewCatalogProvider creates a provider backed by the given database.
func NewCatalogProvider(db *DB) *CatalogProvider {
	return &CatalogProvider{db: db}
}

// GetMovies returns the full catalog as engine movies.
func (p *CatalogProvider) GetMovies(ctx context.Context) ([]recommend.Movie, error) {
	start := time.Now()

	rows, err := p.db.conn.QueryContext(ctx,
		`SELECT id, title, genres, overview, year, popularity FROM movies ORDER BY id`)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	defer closeWithLog(rows, "catalog rows")

	var movies []recommend.Movie
	for rows.Next() {
		var (
			m      recommend.Movie
			genres string
		)
		if err := rows.Scan(&m.ID, &m.Title, &genres, &m.Overview, &m.Year, &m.Popularity); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		m.Genres = splitGenres(genres)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog: %w", err)
	}

	return movies, nil
}

// GetUserRatings returns one user's ratings as engine ratings.
func (p *CatalogProvider) GetUserRatings(ctx context.Context, userID int64) ([]recommend.Rating, error) {
	stored, err := p.db.GetUserRatings(ctx, userID)
	if err != nil {
		return nil, err
	}

	ratings := make([]recommend.Rating, 0, len(stored))
	for _, r := range stored {
		ratings = append(ratings, recommend.Rating{
			UserID:  r.UserID,
			MovieID: r.MovieID,
			Value:   r.Value,
		})
	}

	return ratings, nil
}

// splitGenres splits a stored CSV genre string into trimmed labels,
// dropping empty entries.
func splitGenres(genres string) []string {
	if genres == "" {
		return nil
	}
	parts := strings.Split(genres, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if label := strings.TrimSpace(p); label != "" {
			out = append(out, label)
		}
	}
	return out
}
