// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Catalog is an ordered, immutable collection of games.
// It is safe for concurrent use because nothing mutates it after New returns.
type Catalog struct {
	games   []Game
	byRank  map[int]int      // rank -> position
	byTitle map[string][]int // title -> positions
	genres  []string         // sorted distinct non-empty labels

	minYear, maxYear   int
	minScore, maxScore float64
}

// New builds a catalog from games in their original order.
// It fails with ErrMalformedRecord when a rank is not positive or repeated,
// when a title is empty, or when a score is NaN or infinite. An empty input
// yields a valid, empty catalog.
func New(games []Game) (*Catalog, error) {
	c := &Catalog{
		games:   make([]Game, 0, len(games)),
		byRank:  make(map[int]int, len(games)),
		byTitle: make(map[string][]int, len(games)),
	}

	labels := make(map[string]struct{})
	for i := range games {
		g := games[i].clone()
		if g.Rank <= 0 {
			return nil, &RecordError{Field: "Rank", Err: fmt.Errorf("rank %d is not positive", g.Rank)}
		}
		if strings.TrimSpace(g.Title) == "" {
			return nil, &RecordError{Field: "Game", Err: fmt.Errorf("empty title for rank %d", g.Rank)}
		}
		if math.IsNaN(g.Score) || math.IsInf(g.Score, 0) {
			return nil, &RecordError{Field: "Score", Err: fmt.Errorf("score %v for rank %d is not finite", g.Score, g.Rank)}
		}
		if _, dup := c.byRank[g.Rank]; dup {
			return nil, &RecordError{Field: "Rank", Err: fmt.Errorf("duplicate rank %d", g.Rank)}
		}

		pos := len(c.games)
		c.games = append(c.games, g)
		c.byRank[g.Rank] = pos
		c.byTitle[g.Title] = append(c.byTitle[g.Title], pos)

		for _, label := range g.Genres {
			if label != "" {
				labels[label] = struct{}{}
			}
		}
		c.observeBounds(pos, &g)
	}

	c.genres = make([]string, 0, len(labels))
	for label := range labels {
		c.genres = append(c.genres, label)
	}
	sort.Strings(c.genres)

	return c, nil
}

// observeBounds tracks year and score extremes.
func (c *Catalog) observeBounds(pos int, g *Game) {
	year := g.Year()
	if pos == 0 {
		c.minYear, c.maxYear = year, year
		c.minScore, c.maxScore = g.Score, g.Score
		return
	}
	c.minYear = min(c.minYear, year)
	c.maxYear = max(c.maxYear, year)
	c.minScore = min(c.minScore, g.Score)
	c.maxScore = max(c.maxScore, g.Score)
}

// Len returns the number of games.
func (c *Catalog) Len() int {
	return len(c.games)
}

// At returns the game at position i.
func (c *Catalog) At(i int) (Game, error) {
	if i < 0 || i >= len(c.games) {
		return Game{}, fmt.Errorf("index %d: %w", i, ErrNotFound)
	}
	return c.games[i].clone(), nil
}

// ByRank returns the game with the given rank.
func (c *Catalog) ByRank(rank int) (Game, error) {
	pos, ok := c.byRank[rank]
	if !ok {
		return Game{}, fmt.Errorf("rank %d: %w", rank, ErrNotFound)
	}
	return c.games[pos].clone(), nil
}

// Games returns a copy of every game in catalog order.
func (c *Catalog) Games() []Game {
	out := make([]Game, len(c.games))
	for i := range c.games {
		out[i] = c.games[i].clone()
	}
	return out
}

// Lookup resolves a title to its catalog position.
// Matching is exact and case-sensitive after trimming surrounding whitespace
// from the query. A title shared by several games yields ErrAmbiguousMatch.
func (c *Catalog) Lookup(title string) (int, error) {
	title = strings.TrimSpace(title)
	positions := c.byTitle[title]
	switch len(positions) {
	case 0:
		return -1, fmt.Errorf("title %q: %w", title, ErrNotFound)
	case 1:
		return positions[0], nil
	default:
		return -1, fmt.Errorf("title %q (%d games): %w", title, len(positions), ErrAmbiguousMatch)
	}
}

// Titles returns every title sorted alphabetically, as offered to a reference picker.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.games))
	for i := range c.games {
		titles[i] = c.games[i].Title
	}
	sort.Strings(titles)
	return titles
}

// Genres returns the sorted distinct non-empty genre labels.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// YearBounds returns the earliest and latest release years.
// Both are zero for an empty catalog.
func (c *Catalog) YearBounds() (minYear, maxYear int) {
	return c.minYear, c.maxYear
}

// ScoreBounds returns the lowest and highest scores.
// Both are zero for an empty catalog.
func (c *Catalog) ScoreBounds() (minScore, maxScore float64) {
	return c.minScore, c.maxScore
}

// RankAt returns the rank at position i. It panics when i is out of range.
func (c *Catalog) RankAt(i int) int {
	return c.games[i].Rank
}

// ScoreAt returns the score at position i. It panics when i is out of range.
func (c *Catalog) ScoreAt(i int) float64 {
	return c.games[i].Score
}
