// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, request ID
tracking, and Prometheus metrics integration. These components sit below the
router-level middleware (CORS, rate limiting, timeouts) provided by chi.

Key Components:

  - Compression: Gzip compression for clients that accept it
  - Request ID: UUID-based request tracking, propagated through the logging context
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The typical per-handler stack is:

	middleware.PrometheusMetrics( // Layer 1: Metrics
	    middleware.Compression(   // Layer 2: Gzip
	        middleware.RequestID( // Layer 3: Request tracking
	            handler,          // Layer 4: Business logic
	        ),
	    ),
	)

Usage Example - Request ID:

	http.HandleFunc("/api/v1/movies",
	    middleware.RequestID(handler),
	)

	// Access request ID in handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("processing request")
	    _ = requestID
	}

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
