// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	CatalogGames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_games",
			Help: "Number of games in the loaded catalog",
		},
	)

	CatalogGenres = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_genres",
			Help: "Number of distinct genre labels in the feature space",
		},
	)

	CatalogRowsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_rejected_total",
			Help: "Total number of catalog rows rejected while loading",
		},
		[]string{"source"}, // "csv", "duckdb"
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loading in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// DuckDB Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// Recommendation Metrics
	SimilarityBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_build_duration_seconds",
			Help: "Time taken to encode the catalog and build the similarity matrix",
		},
	)

	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "ambiguous", "insufficient_data", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Total number of recommendation response cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_misses_total",
			Help: "Total number of recommendation response cache misses",
		},
	)

	// Search Metrics
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests by outcome",
		},
		[]string{"outcome"}, // "ok", "invalid", "error"
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Duration of search requests in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results",
			Help:    "Number of games matched per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Query Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_events_published_total",
			Help: "Total number of query events published to the in-process bus",
		},
		[]string{"kind"},
	)

	EventsPublishFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_events_publish_failed_total",
			Help: "Total number of query events that could not be published",
		},
		[]string{"kind"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_events_consumed_total",
			Help: "Total number of query events handled by the consumer",
		},
		[]string{"kind"},
	)

	EventsParseFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_events_parse_failed_total",
			Help: "Total number of query event payloads that failed to decode",
		},
	)

	NATSForwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nats_events_forwarded_total",
			Help: "Total number of query events forwarded to NATS",
		},
	)

	NATSForwardFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nats_events_forward_failed_total",
			Help: "Total number of query events the NATS sink failed to forward",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Stats Metrics
	StatsCounterUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_counter_updates_total",
			Help: "Total number of popularity counter increments",
		},
		[]string{"bucket"}, // "title", "genre"
	)

	StatsErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_errors_total",
			Help: "Total number of popularity store errors",
		},
		[]string{"operation"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordCatalogLoad records the outcome of a catalog load.
func RecordCatalogLoad(source string, games, genres, rejected int, duration time.Duration) {
	CatalogGames.Set(float64(games))
	CatalogGenres.Set(float64(genres))
	CatalogRowsRejected.WithLabelValues(source).Add(float64(rejected))
	CatalogLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordDBQuery records a DuckDB query metric
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordRecommendation records a recommendation request.
func RecordRecommendation(outcome string, duration time.Duration, cacheHit bool) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if outcome != "ok" {
		return
	}
	if cacheHit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordSearch records a search request and its result count.
func RecordSearch(outcome string, duration time.Duration, results int) {
	SearchRequests.WithLabelValues(outcome).Inc()
	SearchDuration.Observe(duration.Seconds())
	if outcome == "ok" {
		SearchResults.Observe(float64(results))
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEventPublished records a publish to the in-process bus.
func RecordEventPublished(kind string, err error) {
	if err != nil {
		EventsPublishFailed.WithLabelValues(kind).Inc()
		return
	}
	EventsPublished.WithLabelValues(kind).Inc()
}

// RecordEventConsumed records an event handled by the consumer.
func RecordEventConsumed(kind string) {
	EventsConsumed.WithLabelValues(kind).Inc()
}

// RecordEventParseFailed records an undecodable event payload.
func RecordEventParseFailed() {
	EventsParseFailed.Inc()
}

// RecordNATSForward records the outcome of forwarding one event to NATS.
func RecordNATSForward(err error) {
	if err != nil {
		NATSForwardFailed.Inc()
		return
	}
	NATSForwarded.Inc()
}

// RecordCircuitBreakerTransition records a breaker state change.
// States map to 0=closed, 1=half-open, 2=open.
func RecordCircuitBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordStatsUpdate records popularity counter increments.
func RecordStatsUpdate(bucket string, n int) {
	StatsCounterUpdates.WithLabelValues(bucket).Add(float64(n))
}

// RecordStatsError records a popularity store failure.
func RecordStatsError(operation string) {
	StatsErrors.WithLabelValues(operation).Inc()
}
