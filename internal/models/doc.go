// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

/*
Package models defines the data structures shared between the database
and API layers.

The package is split by concern:

  - catalog.go: movies, users, ratings, and the request/response types
    for the catalog endpoints, with validator tags on inputs
  - api_responses.go: the APIResponse envelope every endpoint returns
  - health.go: the health endpoint payload

Models carry json tags for the goccy/go-json encoder and validate tags
consumed by the validation package. They hold no behavior beyond that.
*/
package models
