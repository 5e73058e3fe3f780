// Reelist - Movie Catalog and Content-Based Recommendations
// Copyright 2026 Reelist Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

/*
Package services provides suture.Service wrappers for Reelist components.

This package adapts application components to the suture v4 supervision
model, translating their lifecycle patterns (ListenAndServe, ticker
loops) into suture's context-aware Serve pattern.

# Overview

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

The wrappers handle:
  - Lifecycle translation to the Serve pattern
  - Graceful shutdown via context cancellation
  - Error propagation for supervisor restart decisions
  - Service identification via fmt.Stringer

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Rebuild Scheduler (RebuildService):
  - Drives recommendation snapshot rebuilds
  - Rebuilds promptly when catalog writes mark the snapshot stale
  - Rebuilds unconditionally on a fixed interval

# Usage Example

Creating and registering services:

	server := &http.Server{Addr: ":8080", Handler: router}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	rebuildCfg := services.RebuildServiceConfig{
	    RebuildOnStart: cfg.Recommend.RebuildOnStart,
	    Interval:       cfg.Recommend.RebuildInterval,
	}
	tree.AddEngineService(services.NewRebuildService(engine, rebuildCfg, logger))
*/
package services
