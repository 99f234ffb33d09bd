// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"
)

const (
	defaultPopularLimit = 10
	maxPopularLimit     = 100
)

// PopularStats handles GET /api/v1/stats/popular?limit=
// Returns the most requested reference titles and most searched genres.
//
// @Summary Popular titles and genres
// @Tags Stats
// @Produce json
// @Param limit query int false "List size (default from config, max 100)"
// @Success 200 {object} APIResponse{data=stats.Popular}
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse "Statistics disabled"
// @Router /stats/popular [get]
func (h *Handler) PopularStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.stats == nil {
		rw.ServiceUnavailable("query statistics are disabled")
		return
	}

	limit, perr := parseIntParam("limit", r.URL.Query().Get("limit"), h.topN)
	if perr != nil {
		respondParamError(rw, perr)
		return
	}
	if limit < 1 || limit > maxPopularLimit {
		respondParamError(rw, &paramError{Param: "limit", Value: r.URL.Query().Get("limit"), Want: "between 1 and 100"})
		return
	}

	popular, err := h.stats.Popular(r.Context(), limit)
	if err != nil {
		respondDomainError(rw, r, err)
		return
	}
	rw.Success(popular)
}
