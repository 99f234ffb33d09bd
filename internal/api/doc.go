// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package api provides the JSON HTTP API for catalog browsing, recommendations
and search.

Routes (chi):

	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /api/v1/games
	GET /api/v1/games/{rank}
	GET /api/v1/titles
	GET /api/v1/genres
	GET /api/v1/recommendations?title=&k=
	GET /api/v1/recommendations/index/{index}?k=
	GET /api/v1/search?q=&genre=&min_year=&max_year=&min_score=&max_score=
	GET /api/v1/search/defaults
	GET /api/v1/stats/popular?limit=
	GET /metrics
	GET /swagger/*

Response Format:

Every API response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1}
	}

Error Mapping:

  - catalog.ErrNotFound: 404 NOT_FOUND
  - catalog.ErrAmbiguousMatch: 409 AMBIGUOUS_MATCH
  - catalog.ErrInsufficientData: 422 INSUFFICIENT_DATA
  - validation failures and malformed parameters: 400 VALIDATION_ERROR

Successful recommendations and searches publish a query event through the
configured events.Publisher after the response is written. Publishing never
fails a request.
*/
package api
