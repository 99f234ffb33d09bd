// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package search

import (
	"strings"

	"github.com/tomtom215/gamescout/internal/catalog"
)

// Predicate decides whether a game belongs to a result set.
type Predicate interface {
	Match(g *catalog.Game) bool
}

// TextMatch matches titles containing Keyword, ignoring case.
// An empty keyword matches every game.
type TextMatch struct {
	Keyword string
}

// Match implements Predicate.
func (p TextMatch) Match(g *catalog.Game) bool {
	if p.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Title), strings.ToLower(p.Keyword))
}

// GenreMatch matches games that list every label in Genres.
// Empty labels are ignored; an empty set matches every game.
type GenreMatch struct {
	Genres []string
}

// Match implements Predicate.
func (p GenreMatch) Match(g *catalog.Game) bool {
	for _, label := range p.Genres {
		if label == "" {
			continue
		}
		if !g.HasGenre(label) {
			return false
		}
	}
	return true
}

// DateRangeMatch matches release years in [MinYear, MaxYear].
type DateRangeMatch struct {
	MinYear int
	MaxYear int
}

// Match implements Predicate.
func (p DateRangeMatch) Match(g *catalog.Game) bool {
	year := g.Year()
	return year >= p.MinYear && year <= p.MaxYear
}

// ScoreRangeMatch matches critic scores in [Min, Max].
type ScoreRangeMatch struct {
	Min float64
	Max float64
}

// Match implements Predicate.
func (p ScoreRangeMatch) Match(g *catalog.Game) bool {
	return g.Score >= p.Min && g.Score <= p.Max
}

// Filter returns the games of cat matching all predicates, in catalog order.
// With no predicates it returns the whole catalog. The result is never nil.
func Filter(cat *catalog.Catalog, preds ...Predicate) []catalog.Game {
	games := cat.Games()
	out := make([]catalog.Game, 0, len(games))

	for i := range games {
		if matchAll(&games[i], preds) {
			out = append(out, games[i])
		}
	}
	return out
}

func matchAll(g *catalog.Game, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(g) {
			return false
		}
	}
	return true
}
