// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package models

// HealthStatus is the payload for GET /api/v1/health.
//
// Status is "healthy" when the database is reachable and "degraded"
// otherwise. The engine fields describe the active recommendation
// snapshot; a stale snapshot still serves requests until the next
// rebuild completes.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	SnapshotVersion   int64   `json:"snapshot_version"`
	SnapshotStale     bool    `json:"snapshot_stale"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
}
