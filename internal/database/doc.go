// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

/*
Package database provides the DuckDB persistence layer for the movie
catalog, users, and ratings.

The package wraps a single DuckDB connection pool and exposes typed CRUD
methods for the three core tables:

  - movies: catalog entries with title, genres, overview, year, and popularity
  - users: registered users
  - ratings: one rating per (user, movie) pair, upserted on re-rate

The recommendation engine never queries the database directly. Instead,
CatalogProvider adapts the database to the engine's DataProvider interface,
converting stored rows into the engine's value types. This keeps the engine
free of persistence concerns and testable with in-memory fixtures.

Schema Strategy:
All columns are defined in the initial CREATE TABLE statements. IDs are
assigned from DuckDB sequences, and rating upserts use DuckDB-native
INSERT ... ON CONFLICT DO UPDATE.

Thread Safety:
All methods are safe for concurrent use; database/sql manages the
connection pool.
*/
package database
