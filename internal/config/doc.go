// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package config provides centralized configuration management for Gamescout.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. Load validates the result and returns
an immutable *Config.

# Configuration File

The file is taken from CONFIG_PATH or the first of DefaultConfigPaths that
exists. Keys mirror the koanf struct tags:

	catalog:
	  path: data/games.csv
	  source: duckdb
	recommend:
	  default_k: 10
	  cache_ttl: 10m
	search:
	  score_floor: 6
	  score_ceiling: 10
	events:
	  nats_url: nats://localhost:4222

# Environment Variables

Only mapped variables are read (see envMappings):

Catalog and database:
  - CATALOG_PATH, CATALOG_SOURCE (csv|duckdb)
  - DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS

HTTP server and security:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Engines:
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K, RECOMMEND_CACHE_ENABLED, RECOMMEND_CACHE_SIZE, RECOMMEND_CACHE_TTL
  - SEARCH_SCORE_FLOOR, SEARCH_SCORE_CEILING

Events and stats:
  - EVENTS_ENABLED, EVENTS_BUFFER_SIZE
  - NATS_URL, NATS_SUBJECT, NATS_PUBLISH_TIMEOUT, NATS_BREAKER_FAILURES, NATS_BREAKER_TIMEOUT
  - STATS_ENABLED, STATS_PATH, STATS_IN_MEMORY, STATS_TOP_N

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
