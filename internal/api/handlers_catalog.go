// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gamescout/internal/catalog"
)

// GameView is the API rendering of a catalog game. Genre1..Genre3 keep the
// catalog slot positions, including empty and repeated slots; Genres is the
// distinct label set used for similarity.
type GameView struct {
	Rank         int      `json:"rank"`
	Title        string   `json:"title"`
	Release      string   `json:"release"` // dd/mm/yyyy
	Year         int      `json:"year"`
	Genre1       string   `json:"genre1"`
	Genre2       string   `json:"genre2"`
	Genre3       string   `json:"genre3"`
	Genres       []string `json:"genres"`
	Score        float64  `json:"score"`
	ScoreDisplay string   `json:"score_display"` // one fractional digit
}

// GamesResponse lists catalog games.
type GamesResponse struct {
	Games []GameView `json:"games"`
	Total int        `json:"total"`
}

// TitlesResponse lists every catalog title in ascending order.
type TitlesResponse struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// GenresResponse lists the feature space labels.
type GenresResponse struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}

func newGameView(g *catalog.Game) GameView {
	return GameView{
		Rank:         g.Rank,
		Title:        g.Title,
		Release:      catalog.FormatRelease(g.Release),
		Year:         g.Year(),
		Genre1:       g.Slot(0),
		Genre2:       g.Slot(1),
		Genre3:       g.Slot(2),
		Genres:       g.Labels(),
		Score:        g.Score,
		ScoreDisplay: catalog.FormatScore(g.Score),
	}
}

func newGameViews(games []catalog.Game) []GameView {
	views := make([]GameView, len(games))
	for i := range games {
		views[i] = newGameView(&games[i])
	}
	return views
}

// Games handles GET /api/v1/games
//
// @Summary List the catalog
// @Description Returns every game in catalog order.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=GamesResponse}
// @Router /games [get]
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	games := h.catalog.Games()
	NewResponseWriter(w, r).Success(GamesResponse{
		Games: newGameViews(games),
		Total: len(games),
	})
}

// GameByRank handles GET /api/v1/games/{rank}
//
// @Summary Get one game
// @Tags Catalog
// @Produce json
// @Param rank path int true "Catalog rank"
// @Success 200 {object} APIResponse{data=GameView}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Router /games/{rank} [get]
func (h *Handler) GameByRank(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	rank, perr := parseIntParam("rank", chi.URLParam(r, "rank"), 0)
	if perr != nil {
		respondParamError(rw, perr)
		return
	}

	game, err := h.catalog.ByRank(rank)
	if err != nil {
		respondDomainError(rw, r, err)
		return
	}
	rw.Success(newGameView(&game))
}

// Titles handles GET /api/v1/titles
//
// @Summary List titles
// @Description Returns every catalog title sorted ascending, for pick lists feeding /recommendations.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=TitlesResponse}
// @Router /titles [get]
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	titles := h.catalog.Titles()
	NewResponseWriter(w, r).Success(TitlesResponse{
		Titles: titles,
		Count:  len(titles),
	})
}

// Genres handles GET /api/v1/genres
//
// @Summary List genres
// @Description Returns the sorted set of genre labels used for similarity.
// @Tags Catalog
// @Produce json
// @Success 200 {object} APIResponse{data=GenresResponse}
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	labels := h.engine.FeatureSpace().Labels()
	NewResponseWriter(w, r).Success(GenresResponse{
		Genres: labels,
		Count:  len(labels),
	})
}
