// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

/*
Package api provides the HTTP layer: Chi routing, request handlers, and
response helpers.

Endpoints are grouped under /api/v1:

  - /health: liveness, readiness, and overall health
  - /movies: catalog CRUD plus per-movie similarity lookups
  - /users: user creation and rating upserts
  - /recommendations: per-user rankings and engine status

All responses use the models.APIResponse envelope with a "success" or
"error" status. Errors carry a machine-readable code (for example
MOVIE_NOT_FOUND or VALIDATION_ERROR) so clients never parse messages.

Routing uses Chi with go-chi/cors for CORS and go-chi/httprate for
IP-based rate limiting. Write endpoints get a tighter rate limit than
reads. Catalog mutations mark the recommendation snapshot stale; the
rebuild is picked up asynchronously or on the next recommendation
request, so handlers never block on index builds.
*/
package api
