// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Note: this package has no dependencies on other internal packages.
// The DataProvider interface lets the database layer plug in without a
// circular import, and tests run against an in-memory fake.

// Engine owns the corpus snapshot and serves recommendation requests
// against it. Reads are lock-free: the active snapshot hangs off an
// atomic pointer and a rebuild prepares a complete replacement before
// swapping it in. Catalog mutations mark the snapshot stale; the next
// request or the periodic rebuild service triggers the rebuild.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	profiles *ProfileBuilder
	ranker   *Ranker

	providerMu sync.RWMutex
	provider   DataProvider

	snapshot atomic.Pointer[CorpusIndex]
	stale    atomic.Bool

	// rebuildMu makes rebuilds exclusive without blocking readers.
	rebuildMu sync.Mutex

	versionCounter atomic.Int64
	rebuildCount   atomic.Int64
	requestCount   atomic.Int64
	lastRebuildMS  atomic.Int64
}

// NewEngine creates an engine with the given configuration. The data
// provider is wired separately to break the construction cycle with
// the database layer.
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		profiles: NewProfileBuilder(cfg.NeutralRating),
		ranker:   NewRanker(),
	}, nil
}

// SetDataProvider wires the catalog source.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.providerMu.Lock()
	defer e.providerMu.Unlock()
	e.provider = dp
}

func (e *Engine) dataProvider() DataProvider {
	e.providerMu.RLock()
	defer e.providerMu.RUnlock()
	return e.provider
}

// Snapshot returns the active corpus snapshot, nil before the first
// successful rebuild.
func (e *Engine) Snapshot() *CorpusIndex {
	return e.snapshot.Load()
}

// MarkStale records a catalog mutation. The active snapshot keeps
// serving until a rebuild replaces it.
func (e *Engine) MarkStale() {
	e.stale.Store(true)
}

// IsStale reports whether a catalog mutation happened after the active
// snapshot was built.
func (e *Engine) IsStale() bool {
	return e.stale.Load()
}

// Rebuild builds a fresh snapshot from the full catalog and swaps it
// in. Exclusive: a concurrent call returns ErrRebuildInProgress rather
// than queueing.
func (e *Engine) Rebuild(ctx context.Context) error {
	if !e.rebuildMu.TryLock() {
		return ErrRebuildInProgress
	}
	defer e.rebuildMu.Unlock()

	dp := e.dataProvider()
	if dp == nil {
		return ErrNoProvider
	}

	start := time.Now()

	// Clear the flag before reading so a mutation racing with this
	// rebuild marks the new snapshot stale again instead of being lost.
	e.stale.Store(false)

	movies, err := dp.GetMovies(ctx)
	if err != nil {
		e.stale.Store(true)
		return fmt.Errorf("get movies: %w", err)
	}
	if ContextCancelled(ctx) {
		e.stale.Store(true)
		return ctx.Err()
	}

	extractor := NewFeatureExtractor(e.config.GenreBoost)
	idx := BuildIndex(movies, extractor, e.versionCounter.Add(1))
	e.snapshot.Store(idx)

	elapsed := time.Since(start)
	e.rebuildCount.Add(1)
	e.lastRebuildMS.Store(elapsed.Milliseconds())

	e.logger.Info().
		Int64("version", idx.Version()).
		Int("movies", idx.Len()).
		Int("featureless", idx.FeaturelessCount()).
		Int("terms", idx.TermCount()).
		Dur("elapsed", elapsed).
		Msg("corpus snapshot rebuilt")
	return nil
}

// ensureSnapshot returns a usable snapshot, rebuilding first when none
// exists or the catalog changed. If a concurrent rebuild is already
// running, an existing snapshot is served as-is rather than waiting.
func (e *Engine) ensureSnapshot(ctx context.Context) (*CorpusIndex, error) {
	if idx := e.snapshot.Load(); idx != nil && !e.stale.Load() {
		return idx, nil
	}
	if err := e.Rebuild(ctx); err != nil && !errors.Is(err, ErrRebuildInProgress) {
		if idx := e.snapshot.Load(); idx != nil {
			e.logger.Warn().Err(err).Msg("serving previous snapshot, rebuild failed")
			return idx, nil
		}
		return nil, err
	}
	idx := e.snapshot.Load()
	if idx == nil {
		return nil, ErrNoSnapshot
	}
	return idx, nil
}

// Recommend returns up to limit ranked movies for the user, excluding
// everything the user has rated. The caller guarantees the user
// exists; an unknown user simply has no ratings here and gets the
// popularity list. Limit outside [1, MaxLimit] returns ErrInvalidLimit.
func (e *Engine) Recommend(ctx context.Context, userID int64, limit int) (*Result, error) {
	if limit < 1 || limit > e.config.MaxLimit {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLimit, limit, e.config.MaxLimit)
	}

	start := time.Now()
	e.requestCount.Add(1)

	idx, err := e.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		UserID:          userID,
		Mode:            ModePopularity,
		Items:           []ScoredMovie{},
		SnapshotVersion: idx.Version(),
	}
	if idx.Len() == 0 {
		// Empty catalog: an empty list, not an error.
		result.LatencyMS = time.Since(start).Milliseconds()
		return result, nil
	}

	dp := e.dataProvider()
	if dp == nil {
		return nil, ErrNoProvider
	}
	ratings, err := dp.GetUserRatings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user ratings: %w", err)
	}

	rated := make(map[int64]struct{}, len(ratings))
	for _, r := range ratings {
		rated[r.MovieID] = struct{}{}
	}

	profile := e.profiles.Build(ratings, idx)
	items, mode := e.ranker.Rank(idx, profile, rated, limit)

	result.Mode = mode
	result.Items = items
	result.LatencyMS = time.Since(start).Milliseconds()

	e.logger.Debug().
		Int64("user_id", userID).
		Str("mode", mode.String()).
		Int("items", len(items)).
		Int64("snapshot_version", idx.Version()).
		Msg("recommendations served")
	return result, nil
}

// SimilarMovies returns up to limit movies most similar to movieID by
// vector similarity. Unknown movies yield an empty list; the HTTP
// layer turns that into a 404 after its own existence check.
func (e *Engine) SimilarMovies(ctx context.Context, movieID int64, limit int) ([]ScoredMovie, error) {
	if limit < 1 || limit > e.config.MaxLimit {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLimit, limit, e.config.MaxLimit)
	}
	idx, err := e.ensureSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := idx.SimilarTo(movieID, limit)
	if items == nil {
		items = []ScoredMovie{}
	}
	return items, nil
}

// Status reports the engine's snapshot state and counters.
func (e *Engine) Status() Status {
	st := Status{
		Stale:                 e.stale.Load(),
		RebuildCount:          e.rebuildCount.Load(),
		RequestCount:          e.requestCount.Load(),
		LastRebuildDurationMS: e.lastRebuildMS.Load(),
	}
	if idx := e.snapshot.Load(); idx != nil {
		st.SnapshotVersion = idx.Version()
		st.BuiltAt = idx.BuiltAt()
		st.MovieCount = idx.Len()
		st.FeaturelessCount = idx.FeaturelessCount()
		st.TermCount = idx.TermCount()
	}
	return st
}
