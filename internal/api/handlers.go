// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"time"

	"github.com/reelist/reelist/internal/config"
	"github.com/reelist/reelist/internal/database"
	"github.com/reelist/reelist/internal/recommend"
)

// Version is the reported application version.
const Version = "1.0.0"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response and parameter helpers
//   - handlers_health.go: health and readiness endpoints
//   - handlers_movies.go: catalog CRUD and similarity endpoints
//   - handlers_users.go: user and rating endpoints
//   - handlers_recommend.go: recommendation endpoints
type Handler struct {
	db        *database.DB
	engine    *recommend.Engine
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(db, engine, cfg)
//	router := api.NewRouter(handler, chiMW)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(db *database.DB, engine *recommend.Engine, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}
