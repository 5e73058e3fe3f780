// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package main is the entry point for the Reelist server application.
//
// Reelist is a self-hosted movie catalog with content-based
// recommendations. It stores movies, users, and ratings in DuckDB and
// serves personalized rankings computed from tf-idf feature vectors
// over genres and overview text.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Database: Initialize DuckDB and create the catalog schema
//  3. Engine: Build the recommendation engine and its first snapshot
//  4. HTTP API: Chi router with the REST endpoints under /api/v1
//  5. Supervisor: suture tree running the rebuild scheduler and HTTP server
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (REELIST_ prefix, e.g. REELIST_SERVER__PORT)
//   - Config file (config.yaml, or REELIST_CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (configurable timeout)
//   - Checkpoints and closes the database
//
// # Example Usage
//
// Development with the demo catalog:
//
//	export REELIST_DATABASE__PATH=/tmp/reelist.duckdb
//	export REELIST_DATABASE__SEED_DEMO_DATA=true
//	./reelist
//
// Docker:
//
//	docker run -d \
//	  -e REELIST_DATABASE__PATH=/data/reelist.duckdb \
//	  -v reelist-data:/data \
//	  -p 8080:8080 \
//	  ghcr.io/reelist/reelist
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reelist/reelist/internal/api"
	"github.com/reelist/reelist/internal/config"
	"github.com/reelist/reelist/internal/database"
	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/recommend"
	"github.com/reelist/reelist/internal/supervisor"
	"github.com/reelist/reelist/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("db_path", cfg.Database.Path).
		Int("port", cfg.Server.Port).
		Msg("Starting Reelist")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	// Seed the demo catalog if enabled (for development and screenshots)
	if cfg.Database.SeedDemoData {
		logging.Info().Msg("Demo data seeding enabled")
		if err := db.SeedDemoData(context.Background()); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				logging.Error().Err(closeErr).Msg("Error closing database")
			}
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	// Build the recommendation engine against the catalog
	engine, err := recommend.NewEngine(&recommend.Config{
		GenreBoost:    cfg.Recommend.GenreBoost,
		NeutralRating: cfg.Recommend.NeutralRating,
		MaxLimit:      cfg.API.MaxRecsLimit,
	}, logging.With().Str("component", "recommend").Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	engine.SetDataProvider(database.NewCatalogProvider(db))

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The supervisor logs through slog; bridge zerolog for sutureslog.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(db, engine, cfg)
	chiMW := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMW)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Engine layer: snapshot rebuild scheduling
	tree.AddEngineService(services.NewRebuildService(engine, services.RebuildServiceConfig{
		RebuildOnStart: cfg.Recommend.RebuildOnStart,
		Interval:       cfg.Recommend.RebuildInterval,
	}, logging.Logger()))

	// API layer: HTTP server
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
