// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package main is the entry point for the Gamescout server.
//
// Gamescout loads a ranked catalog of video games, builds a genre
// similarity matrix once at startup, and serves content-based
// recommendations and multi-criteria search over a JSON API.
//
// # Startup Order
//
//  1. Configuration: defaults, optional config.yaml, then environment (Koanf v2)
//  2. Catalog: CSV reader or DuckDB read_csv; malformed rows are logged and skipped
//  3. Recommendation engine: feature space and cosine similarity matrix
//  4. Search service
//  5. Query events (optional): Watermill bus, NATS sink, BadgerDB statistics
//  6. Supervisor tree: event consumer, stats GC and HTTP server
//
// A catalog that cannot be loaded stops startup; the server never serves
// a partial matrix.
//
// # Configuration
//
// The most common settings:
//   - CATALOG_PATH: catalog CSV (default: data/games.csv)
//   - CATALOG_SOURCE: csv or duckdb (default: csv)
//   - HTTP_PORT: listen port (default: 8501)
//   - LOG_LEVEL, LOG_FORMAT: zerolog settings
//   - EVENTS_ENABLED, NATS_URL, STATS_ENABLED: query event pipeline
//
// See internal/config for the full list.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests within HTTP_TIMEOUT, then the event bus, NATS sink
// and statistics store are closed.
//
// # Example Usage
//
//	export CATALOG_PATH=/data/games.csv
//	export LOG_FORMAT=console
//	./gamescout
//
//	curl 'http://localhost:8501/api/v1/recommendations?title=Alpha&k=5'
package main
