// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/models"
)

// UpsertRating writes a user's rating for a movie. Re-rating the same
// movie replaces the previous value; the (user, movie) pair stays
// unique. Returns ErrUserNotFound or ErrMovieNotFound when either
// referenced row is missing.
func (db *DB) UpsertRating(ctx context.Context, userID, movieID int64, value float64) (*models.Rating, error) {
	// DuckDB does not enforce foreign keys, so referential integrity is
	// checked explicitly before the write.
	userExists, err := db.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, ErrUserNotFound
	}

	movieExists, err := db.movieExists(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !movieExists {
		return nil, ErrMovieNotFound
	}

	start := time.Now()
	now := time.Now().UTC()

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO ratings (user_id, movie_id, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, movie_id)
		 DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		userID, movieID, value, now)
	metrics.RecordDBQuery("upsert", "ratings", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert rating (user %d, movie %d): %w", userID, movieID, err)
	}

	return &models.Rating{
		UserID:    userID,
		MovieID:   movieID,
		Value:     value,
		UpdatedAt: now,
	}, nil
}

// GetUserRatings returns all ratings for one user ordered by movie ID.
func (db *DB) GetUserRatings(ctx context.Context, userID int64) ([]models.Rating, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT user_id, movie_id, value, updated_at
		 FROM ratings WHERE user_id = ? ORDER BY movie_id`, userID)
	metrics.RecordDBQuery("select", "ratings", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for user %d: %w", userID, err)
	}
	defer closeWithLog(rows, "ratings rows")

	var ratings []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.UserID, &r.MovieID, &r.Value, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}

	return ratings, nil
}

// CountRatings returns the total number of stored ratings.
func (db *DB) CountRatings(ctx context.Context) (int64, error) {
	start := time.Now()

	var count int64
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count)
	metrics.RecordDBQuery("count", "ratings", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}

// movieExists reports whether a movie ID exists.
func (db *DB) movieExists(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM movies WHERE id = ?)`, id,
	).Scan(&exists)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to check movie %d: %w", id, err)
	}
	return exists, nil
}
