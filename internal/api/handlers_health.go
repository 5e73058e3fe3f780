// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"
	"time"

	"github.com/reelist/reelist/internal/models"
)

// Health handles GET /api/v1/health.
// Reports database connectivity and the state of the active
// recommendation snapshot.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	engineStatus := h.engine.Status()

	respondSuccess(w, http.StatusOK, models.HealthStatus{
		Status:            status,
		Version:           Version,
		DatabaseConnected: dbConnected,
		SnapshotVersion:   engineStatus.SnapshotVersion,
		SnapshotStale:     engineStatus.Stale,
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles GET /api/v1/health/live (Kubernetes liveness).
// Returns 200 if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready (Kubernetes readiness).
// Ready requires a reachable database; the engine may still be building
// its first snapshot.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil || h.db.Ping(r.Context()) != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Database not reachable", nil)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
