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
	"time"

	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/models"
)

// InsertUser creates a new user and returns it with its assigned ID.
func (db *DB) InsertUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	start := time.Now()

	var id int64
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO users (name) VALUES (?) RETURNING id`, req.Name,
	).Scan(&id)
	metrics.RecordDBQuery("insert", "users", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &models.User{ID: id, Name: req.Name}, nil
}

// GetUser returns one user by ID, or ErrUserNotFound.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	start := time.Now()

	var u models.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return &u, nil
}

// ListUsers returns all users ordered by ID.
func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	start := time.Now()

	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM users ORDER BY id`)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer closeWithLog(rows, "users rows")

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// UserExists reports whether a user ID exists.
func (db *DB) UserExists(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id,
	).Scan(&exists)
	metrics.RecordDBQuery("select", "users", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", id, err)
	}
	return exists, nil
}
