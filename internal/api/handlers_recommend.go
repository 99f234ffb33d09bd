// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/logging"
	"github.com/tomtom215/gamescout/internal/metrics"
	"github.com/tomtom215/gamescout/internal/recommend"
)

// RecommendationView is one ranked recommendation.
type RecommendationView struct {
	// Position is the 1-based place in the ranking.
	Position int `json:"position"`

	// Index is the game's catalog position.
	Index int `json:"index"`

	Game GameView `json:"game"`

	// Similarity is the rounded percentage, e.g. "87%".
	Similarity string `json:"similarity"`

	// SimilarityScore is the raw cosine similarity in [0, 1].
	SimilarityScore float64 `json:"similarity_score"`
}

// RecommendationsResponse is the reference game and its ranked neighbours.
type RecommendationsResponse struct {
	Reference      GameView             `json:"reference"`
	ReferenceIndex int                  `json:"reference_index"`
	K              int                  `json:"k"`
	Items          []RecommendationView `json:"items"`
	CacheHit       bool                 `json:"cache_hit"`
}

func newRecommendationsResponse(resp *recommend.Response) RecommendationsResponse {
	items := make([]RecommendationView, len(resp.Items))
	for i := range resp.Items {
		rec := &resp.Items[i]
		items[i] = RecommendationView{
			Position:        i + 1,
			Index:           rec.Index,
			Game:            newGameView(&rec.Game),
			Similarity:      rec.PercentString(),
			SimilarityScore: rec.Similarity,
		}
	}
	return RecommendationsResponse{
		Reference:      newGameView(&resp.Reference),
		ReferenceIndex: resp.ReferenceIndex,
		K:              resp.Metadata.K,
		Items:          items,
		CacheHit:       resp.Metadata.CacheHit,
	}
}

// Recommendations handles GET /api/v1/recommendations?title=&k=
// Returns the games most similar to the titled reference game.
//
// @Summary Recommend similar games
// @Description Ranks every other game by genre cosine similarity, then score, then rank.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact reference title"
// @Param k query int false "Number of recommendations (default 10, capped at RECOMMEND_MAX_K, default 100); returns min(k, games-1) up to the cap"
// @Success 200 {object} APIResponse{data=RecommendationsResponse}
// @Failure 400 {object} APIResponse "Missing title or malformed k"
// @Failure 404 {object} APIResponse "Unknown title"
// @Failure 409 {object} APIResponse "Title shared by several games"
// @Failure 422 {object} APIResponse "Catalog too small"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		rw.ValidationError("title is required", &paramError{Param: "title", Want: "a game title"})
		return
	}
	k, perr := parseIntParam("k", r.URL.Query().Get("k"), 0)
	if perr != nil {
		respondParamError(rw, perr)
		return
	}

	resp, err := h.engine.RecommendByTitle(r.Context(), title, k)
	h.finishRecommendation(rw, r, resp, err, start)
}

// RecommendationsByIndex handles GET /api/v1/recommendations/index/{index}?k=
//
// @Summary Recommend games similar to a catalog position
// @Tags Recommendations
// @Produce json
// @Param index path int true "Catalog position (0-based)"
// @Param k query int false "Number of recommendations (default 10, capped at RECOMMEND_MAX_K, default 100); returns min(k, games-1) up to the cap"
// @Success 200 {object} APIResponse{data=RecommendationsResponse}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 422 {object} APIResponse
// @Router /recommendations/index/{index} [get]
func (h *Handler) RecommendationsByIndex(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	index, perr := parseIntParam("index", chi.URLParam(r, "index"), 0)
	if perr != nil {
		respondParamError(rw, perr)
		return
	}
	k, perr := parseIntParam("k", r.URL.Query().Get("k"), 0)
	if perr != nil {
		respondParamError(rw, perr)
		return
	}

	resp, err := h.engine.RecommendByIndex(r.Context(), index, k)
	h.finishRecommendation(rw, r, resp, err, start)
}

func (h *Handler) finishRecommendation(rw *ResponseWriter, r *http.Request, resp *recommend.Response, err error, start time.Time) {
	if err != nil {
		outcome := respondDomainError(rw, r, err)
		metrics.RecordRecommendation(outcome, time.Since(start), false)
		return
	}

	metrics.RecordRecommendation(outcomeOK, time.Since(start), resp.Metadata.CacheHit)
	rw.Success(newRecommendationsResponse(resp))

	h.publish(r, events.NewRecommendEvent(
		logging.RequestIDFromContext(r.Context()),
		resp.Reference.Title,
		resp.Metadata.K,
		len(resp.Items),
	))
}
