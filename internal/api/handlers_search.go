// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/logging"
	"github.com/tomtom215/gamescout/internal/metrics"
	"github.com/tomtom215/gamescout/internal/search"
)

// SearchResponse is the filtered catalog and the bounds that were applied.
type SearchResponse struct {
	Criteria search.Criteria `json:"criteria"`
	Games    []GameView      `json:"games"`
	Total    int             `json:"total"`
}

// parseSearchQuery builds a search.Query from URL parameters. Genres may be
// repeated (genre=A&genre=B) or comma-separated (genres=A,B).
func parseSearchQuery(values url.Values) (*search.Query, *paramError) {
	q := &search.Query{Keyword: strings.TrimSpace(values.Get("q"))}

	for _, g := range values["genre"] {
		if g = strings.TrimSpace(g); g != "" {
			q.Genres = append(q.Genres, g)
		}
	}
	q.Genres = append(q.Genres, parseCommaSeparated(values.Get("genres"))...)

	var perr *paramError
	if q.MinYear, perr = parseOptionalInt("min_year", values.Get("min_year")); perr != nil {
		return nil, perr
	}
	if q.MaxYear, perr = parseOptionalInt("max_year", values.Get("max_year")); perr != nil {
		return nil, perr
	}
	if q.MinScore, perr = parseOptionalScore("min_score", values.Get("min_score")); perr != nil {
		return nil, perr
	}
	if q.MaxScore, perr = parseOptionalScore("max_score", values.Get("max_score")); perr != nil {
		return nil, perr
	}
	return q, nil
}

// Search handles GET /api/v1/search
//
// @Summary Search the catalog
// @Description Conjunction of title keyword, required genres, release year range and score range. Unset bounds default to the catalog's range.
// @Tags Search
// @Produce json
// @Param q query string false "Case-insensitive title substring"
// @Param genre query []string false "Required genre (repeatable, at most 3)" collectionFormat(multi)
// @Param min_year query int false "Earliest release year"
// @Param max_year query int false "Latest release year"
// @Param min_score query number false "Lowest score"
// @Param max_score query number false "Highest score"
// @Success 200 {object} APIResponse{data=SearchResponse}
// @Failure 400 {object} APIResponse "Validation failed"
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	q, perr := parseSearchQuery(r.URL.Query())
	if perr != nil {
		metrics.RecordSearch(outcomeInvalid, time.Since(start), 0)
		respondParamError(rw, perr)
		return
	}

	result, err := h.search.Search(r.Context(), q)
	if err != nil {
		outcome := respondDomainError(rw, r, err)
		metrics.RecordSearch(outcome, time.Since(start), 0)
		return
	}

	metrics.RecordSearch(outcomeOK, time.Since(start), result.Total)
	rw.Success(SearchResponse{
		Criteria: result.Criteria,
		Games:    newGameViews(result.Games),
		Total:    result.Total,
	})

	h.publish(r, events.NewSearchEvent(
		logging.RequestIDFromContext(r.Context()),
		result.Criteria.Keyword,
		result.Criteria.Genres,
		result.Total,
	))
}

// SearchDefaults handles GET /api/v1/search/defaults
//
// @Summary Default search bounds
// @Description Returns the catalog's release year and score ranges, which a search uses for any unset bound.
// @Tags Search
// @Produce json
// @Success 200 {object} APIResponse{data=search.Criteria}
// @Router /search/defaults [get]
func (h *Handler) SearchDefaults(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.search.Defaults())
}
