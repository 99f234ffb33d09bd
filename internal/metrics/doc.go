// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry with promauto and
exposed at /metrics by promhttp:

	curl http://localhost:8501/metrics

# Available Metrics

Catalog:
  - catalog_games, catalog_genres: size of the loaded catalog (gauge)
  - catalog_rows_rejected_total: malformed rows skipped (counter, label: source)
  - catalog_load_duration_seconds: load time (histogram, label: source)
  - duckdb_query_duration_seconds, duckdb_query_errors_total: DuckDB loader queries

Recommendation and search:
  - similarity_build_duration_seconds: encode and matrix build time (gauge)
  - recommendation_requests_total: requests by outcome (counter)
  - recommendation_duration_seconds: latency (histogram)
  - recommendation_cache_hits_total, recommendation_cache_misses_total
  - search_requests_total, search_duration_seconds, search_results

HTTP:
  - api_requests_total: labels method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: labels method, endpoint
  - api_active_requests: in-flight requests (gauge)

Events and stats:
  - query_events_published_total, query_events_publish_failed_total (label: kind)
  - query_events_consumed_total, query_events_parse_failed_total
  - nats_events_forwarded_total, nats_events_forward_failed_total
  - circuit_breaker_state, circuit_breaker_transitions_total
  - stats_counter_updates_total (label: bucket), stats_errors_total

# Usage

Callers use the Record* helpers rather than touching collectors directly:

	metrics.RecordRecommendation("ok", time.Since(start), resp.Metadata.CacheHit)
	metrics.RecordNATSForward(err)

The HTTP middleware in internal/middleware records api_* metrics for every
routed request.
*/
package metrics
