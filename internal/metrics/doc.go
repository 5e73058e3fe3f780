// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the application with the Prometheus client library,
exposing metrics for API traffic, database query performance, and the
recommendation engine's snapshot lifecycle.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table

API Metrics:
  - api_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests currently in flight (gauge)

Recommendation Metrics:
  - recommend_requests_total: Recommendation requests served (counter)
    Labels: mode (content, popularity)
  - recommend_duration_seconds: End-to-end recommendation latency (histogram)

Engine Metrics:
  - engine_rebuilds_total: Completed snapshot rebuilds (counter)
  - engine_rebuild_duration_seconds: Rebuild duration (histogram)
  - engine_snapshot_movies: Movies indexed in the active snapshot (gauge)
  - engine_snapshot_stale: 1 when the active snapshot is stale (gauge)

Application Metrics:
  - app_info: Build information (gauge, always 1)
    Labels: version, go_version

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/reelist/reelist/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    http.Handle("/metrics", promhttp.Handler())

	    metrics.RecordAPIRequest("GET", "/api/v1/movies", "200", 23*time.Millisecond)
	    metrics.RecordDBQuery("SELECT", "movies", 5*time.Millisecond, nil)
	    metrics.RecordRecommendation("content", 12*time.Millisecond)
	}

Recording database query metrics:

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery("SELECT", "movies", time.Since(start), err)

# Prometheus Configuration

Example prometheus.yml configuration:

	scrape_configs:
	  - job_name: 'reelist'
	    static_configs:
	      - targets: ['localhost:8080']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

Example PromQL queries:

	# API request rate
	rate(api_requests_total[5m])

	# API p95 latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Share of recommendations served from the cold-start fallback
	sum(rate(recommend_requests_total{mode="popularity"}[15m]))
	/
	sum(rate(recommend_requests_total[15m]))

	# Time since the last snapshot rebuild grew the corpus
	engine_snapshot_movies

# Thread Safety

All metric recording functions are safe for concurrent use from multiple
goroutines. The Prometheus client library handles synchronization internally.

# Cardinality Management

To keep cardinality bounded:

  - Endpoint labels use the chi route pattern, not the raw URL path
  - Recommendation mode is limited to the fixed content/popularity pair
  - Table and operation labels come from a small fixed set in the database layer

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/database: Database metrics recording
  - internal/supervisor/services: Rebuild metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics
