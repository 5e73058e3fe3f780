// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/models"
)

// InsertMovie inserts a new catalog entry and returns it with its
// assigned ID.
func (db *DB) InsertMovie(ctx context.Context, req *models.CreateMovieRequest) (*models.Movie, error) {
	start := time.Now()

	genres := strings.Join(req.Genres, ",")
	var id int64
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO movies (title, genres, overview, year, poster_url, popularity)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		req.Title, genres, req.Overview, req.Year, req.PosterURL, req.Popularity,
	).Scan(&id)
	metrics.RecordDBQuery("insert", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}

	return &models.Movie{
		ID:         id,
		Title:      req.Title,
		Genres:     genres,
		Overview:   req.Overview,
		Year:       req.Year,
		PosterURL:  req.PosterURL,
		Popularity: req.Popularity,
	}, nil
}

// GetMovie returns one catalog entry by ID, or ErrMovieNotFound.
func (db *DB) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	start := time.Now()

	var m models.Movie
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, genres, overview, year, poster_url, popularity
		 FROM movies WHERE id = ?`, id,
	).Scan(&m.ID, &m.Title, &m.Genres, &m.Overview, &m.Year, &m.PosterURL, &m.Popularity)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	return &m, nil
}

// ListMovies returns one page of the catalog ordered by ID, plus the
// total catalog size for pagination metadata.
func (db *DB) ListMovies(ctx context.Context, limit, offset int) ([]models.Movie, int64, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, genres, overview, year, poster_url, popularity
		 FROM movies ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movies: %w", err)
	}
	defer closeWithLog(rows, "movies rows")

	movies := make([]models.Movie, 0, limit)
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genres, &m.Overview, &m.Year, &m.PosterURL, &m.Popularity); err != nil {
			return nil, 0, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate movies: %w", err)
	}

	total, err := db.CountMovies(ctx)
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// CountMovies returns the total catalog size.
func (db *DB) CountMovies(ctx context.Context) (int64, error) {
	start := time.Now()

	var count int64
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count)
	metrics.RecordDBQuery("count", "movies", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

// DeleteMovie removes a catalog entry and its ratings atomically.
// Returns ErrMovieNotFound when the ID does not exist.
func (db *DB) DeleteMovie(ctx context.Context, id int64) error {
	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		metrics.RecordDBQuery("delete", "movies", time.Since(start), err)
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		metrics.RecordDBQuery("delete", "movies", time.Since(start), ErrMovieNotFound)
		return ErrMovieNotFound
	}

	// Ratings referencing the movie go with it
	if _, err := tx.ExecContext(ctx, `DELETE FROM ratings WHERE movie_id = ?`, id); err != nil {
		metrics.RecordDBQuery("delete", "ratings", time.Since(start), err)
		return fmt.Errorf("failed to delete ratings for movie %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movie deletion: %w", err)
	}

	metrics.RecordDBQuery("delete", "movies", time.Since(start), nil)
	return nil
}
