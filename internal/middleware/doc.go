// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package middleware provides chi-compatible HTTP middleware for the API.

Key Components:

  - RequestID: reuses an upstream X-Request-ID or generates a UUID, echoes it
    on the response and stores it in the logging context
  - PrometheusMetrics: request totals, latency and in-flight gauge, labelled
    by chi route pattern so path parameters do not explode cardinality
  - AccessLog: one zerolog line per request

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.PrometheusMetrics)

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are
assembled in internal/api.

See Also:

  - internal/api: router and handlers
  - internal/metrics: Prometheus collector definitions
*/
package middleware
