// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/recommend"
)

// RebuildEngine defines the interface the rebuild scheduler needs from
// the recommendation engine. Satisfied by *recommend.Engine.
type RebuildEngine interface {
	Rebuild(ctx context.Context) error
	IsStale() bool
	Status() recommend.Status
}

// RebuildServiceConfig holds configuration for the rebuild scheduler.
type RebuildServiceConfig struct {
	// RebuildOnStart triggers a rebuild when the service starts.
	RebuildOnStart bool

	// Interval is how often to rebuild the snapshot unconditionally.
	Interval time.Duration

	// StaleCheckInterval is how often to check the stale flag between
	// full rebuilds. Default: 10s.
	StaleCheckInterval time.Duration
}

// RebuildService schedules snapshot rebuilds for the recommendation
// engine. It rebuilds promptly after catalog writes mark the snapshot
// stale, and unconditionally on a fixed interval so drift never
// outlives one period.
type RebuildService struct {
	engine RebuildEngine
	config RebuildServiceConfig
	logger zerolog.Logger
	name   string
}

// NewRebuildService creates a new rebuild scheduler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRebuildService(engine RebuildEngine, cfg RebuildServiceConfig, logger zerolog.Logger) *RebuildService {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.StaleCheckInterval <= 0 {
		cfg.StaleCheckInterval = 10 * time.Second
	}
	return &RebuildService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "rebuild").Logger(),
		name:   "rebuild-service",
	}
}

// Serve implements the suture.Service interface. It manages the
// rebuild loop for the recommendation engine.
func (s *RebuildService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("rebuild_on_start", s.config.RebuildOnStart).
		Dur("interval", s.config.Interval).
		Dur("stale_check_interval", s.config.StaleCheckInterval).
		Msg("rebuild service starting")

	if s.config.RebuildOnStart {
		if err := s.rebuild(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial rebuild failed (will retry on schedule)")
		}
	}

	fullTicker := time.NewTicker(s.config.Interval)
	defer fullTicker.Stop()

	staleTicker := time.NewTicker(s.config.StaleCheckInterval)
	defer staleTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("rebuild service shutting down")
			return ctx.Err()

		case <-fullTicker.C:
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled rebuild failed")
			}

		case <-staleTicker.C:
			if !s.engine.IsStale() {
				continue
			}
			s.logger.Debug().Msg("stale snapshot detected")
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("stale-triggered rebuild failed")
			}
		}
	}
}

// rebuild performs one rebuild cycle with a bounded context and records
// the outcome.
func (s *RebuildService) rebuild(ctx context.Context) error {
	rebuildCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	start := time.Now()

	if err := s.engine.Rebuild(rebuildCtx); err != nil {
		return err
	}

	status := s.engine.Status()
	metrics.RecordRebuild(time.Since(start), status.MovieCount)

	s.logger.Info().
		Dur("duration", time.Since(start)).
		Int("movies", status.MovieCount).
		Int64("snapshot_version", status.SnapshotVersion).
		Msg("snapshot rebuilt")

	return nil
}

// String returns the service name for logging.
func (s *RebuildService) String() string {
	return s.name
}
