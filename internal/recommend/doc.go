// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package recommend implements the content-based recommendation engine.
//
// # Architecture
//
// Four cooperating pieces, composed by the Engine:
//
//   - FeatureExtractor: turns a movie's genre labels and overview text
//     into a normalized tf-idf vector, with genre terms boosted.
//   - CorpusIndex: an immutable snapshot of the whole catalog with its
//     vectors and corpus statistics, built in two passes and replaced
//     atomically on rebuild.
//   - ProfileBuilder: folds a user's ratings into a single taste
//     vector, weighting each rated movie by its signed distance from
//     the neutral rating.
//   - Ranker: scores unrated candidates against the profile (dot
//     product of unit vectors) and orders them deterministically, with
//     a popularity fallback for cold-start users.
//
// # Design Principles
//
//   - Deterministic: identical catalog, ratings and limit always
//     produce the identical list. No randomness anywhere.
//   - Lock-free reads: requests read the active snapshot through an
//     atomic pointer; rebuilds never block readers.
//   - Whole-corpus rebuilds: there is no incremental index update, a
//     catalog mutation marks the snapshot stale and the next rebuild
//     replaces it entirely.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.SetDataProvider(provider)
//	if err := engine.Rebuild(ctx); err != nil { ... }
//
//	result, err := engine.Recommend(ctx, userID, 12)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Rebuilds are exclusive among
// themselves; reads proceed concurrently against whichever snapshot is
// active.
package recommend
