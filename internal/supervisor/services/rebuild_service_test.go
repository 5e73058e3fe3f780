// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/reelist/reelist/internal/recommend"
)

// mockRebuildEngine is a test double for RebuildEngine.
type mockRebuildEngine struct {
	rebuildCount atomic.Int32
	rebuildErr   error
	stale        atomic.Bool
}

func (m *mockRebuildEngine) Rebuild(ctx context.Context) error {
	m.rebuildCount.Add(1)
	if m.rebuildErr != nil {
		return m.rebuildErr
	}
	m.stale.Store(false)
	return nil
}

func (m *mockRebuildEngine) IsStale() bool {
	return m.stale.Load()
}

func (m *mockRebuildEngine) Status() recommend.Status {
	return recommend.Status{MovieCount: 3, SnapshotVersion: int64(m.rebuildCount.Load())}
}

func TestRebuildService_Interface(t *testing.T) {
	var _ suture.Service = (*RebuildService)(nil)
}

func TestRebuildService_Defaults(t *testing.T) {
	svc := NewRebuildService(&mockRebuildEngine{}, RebuildServiceConfig{}, zerolog.Nop())

	if svc.config.Interval != 5*time.Minute {
		t.Errorf("expected default interval 5m, got %v", svc.config.Interval)
	}
	if svc.config.StaleCheckInterval != 10*time.Second {
		t.Errorf("expected default stale check interval 10s, got %v", svc.config.StaleCheckInterval)
	}
	if svc.String() != "rebuild-service" {
		t.Errorf("expected 'rebuild-service', got %q", svc.String())
	}
}

func TestRebuildService_RebuildOnStart(t *testing.T) {
	engine := &mockRebuildEngine{}
	svc := NewRebuildService(engine, RebuildServiceConfig{
		RebuildOnStart:     true,
		Interval:           time.Hour,
		StaleCheckInterval: time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}

	if engine.rebuildCount.Load() != 1 {
		t.Errorf("expected 1 rebuild on start, got %d", engine.rebuildCount.Load())
	}
}

func TestRebuildService_StaleTriggersRebuild(t *testing.T) {
	engine := &mockRebuildEngine{}
	engine.stale.Store(true)

	svc := NewRebuildService(engine, RebuildServiceConfig{
		Interval:           time.Hour,
		StaleCheckInterval: 20 * time.Millisecond,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_ = svc.Serve(ctx)

	if engine.rebuildCount.Load() < 1 {
		t.Error("expected stale flag to trigger a rebuild")
	}
	if engine.IsStale() {
		t.Error("expected stale flag cleared after rebuild")
	}
}

func TestRebuildService_FreshSnapshotSkipsRebuild(t *testing.T) {
	engine := &mockRebuildEngine{}

	svc := NewRebuildService(engine, RebuildServiceConfig{
		Interval:           time.Hour,
		StaleCheckInterval: 20 * time.Millisecond,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	_ = svc.Serve(ctx)

	if engine.rebuildCount.Load() != 0 {
		t.Errorf("expected no rebuilds for a fresh snapshot, got %d", engine.rebuildCount.Load())
	}
}

func TestRebuildService_PeriodicRebuild(t *testing.T) {
	engine := &mockRebuildEngine{}

	svc := NewRebuildService(engine, RebuildServiceConfig{
		Interval:           30 * time.Millisecond,
		StaleCheckInterval: time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_ = svc.Serve(ctx)

	if engine.rebuildCount.Load() < 2 {
		t.Errorf("expected at least 2 periodic rebuilds, got %d", engine.rebuildCount.Load())
	}
}

func TestRebuildService_RebuildFailureDoesNotStopService(t *testing.T) {
	engine := &mockRebuildEngine{rebuildErr: errors.New("provider unavailable")}

	svc := NewRebuildService(engine, RebuildServiceConfig{
		RebuildOnStart:     true,
		Interval:           30 * time.Millisecond,
		StaleCheckInterval: time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected service to keep running until timeout, got %v", err)
	}

	if engine.rebuildCount.Load() < 2 {
		t.Errorf("expected retries after failed rebuilds, got %d", engine.rebuildCount.Load())
	}
}
