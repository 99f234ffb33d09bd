// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package catalog

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ReleaseLayout is the release date format of the catalog exchange file (dd/mm/yyyy).
// Single-digit days and months are accepted when parsing.
const ReleaseLayout = "02/01/2006"

const releaseParseLayout = "2/1/2006"

// MaxGenres is the number of genre slots per game.
const MaxGenres = 3

// Game is one catalog entry.
type Game struct {
	// Rank is the 1-based catalog rank, unique within a catalog.
	Rank int `json:"rank"`

	// Title is the game title, used for reference lookups.
	Title string `json:"title"`

	// Release is the release date (UTC midnight).
	Release time.Time `json:"release"`

	// Genres holds up to MaxGenres labels in slot order. Empty slots may be
	// present as empty strings and carry no meaning.
	Genres []string `json:"genres"`

	// Score is the critic score.
	Score float64 `json:"score"`
}

// Year returns the calendar year of the release date.
func (g *Game) Year() int {
	return g.Release.Year()
}

// Labels returns the distinct non-empty genre labels in slot order.
func (g *Game) Labels() []string {
	labels := make([]string, 0, len(g.Genres))
	for _, genre := range g.Genres {
		if genre == "" || slices.Contains(labels, genre) {
			continue
		}
		labels = append(labels, genre)
	}
	return labels
}

// HasGenre reports whether label occupies one of the game's genre slots.
// Matching is exact and case-sensitive; the empty label never matches.
func (g *Game) HasGenre(label string) bool {
	if label == "" {
		return false
	}
	return slices.Contains(g.Genres, label)
}

// Slot returns the genre in slot i (0-based) or "" when the slot is empty.
func (g *Game) Slot(i int) string {
	if i < 0 || i >= len(g.Genres) {
		return ""
	}
	return g.Genres[i]
}

// clone returns a deep copy so catalog internals are never shared.
func (g *Game) clone() Game {
	c := *g
	c.Genres = append([]string(nil), g.Genres...)
	return c
}

// ParseRelease parses a dd/mm/yyyy release date.
func ParseRelease(s string) (time.Time, error) {
	t, err := time.Parse(releaseParseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid release date %q: want dd/mm/yyyy", s)
	}
	return t, nil
}

// FormatRelease renders a release date as dd/mm/yyyy.
func FormatRelease(t time.Time) string {
	return t.Format(ReleaseLayout)
}

// ParseScore parses a score written with either '.' or ',' as the decimal separator.
func ParseScore(s string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if normalized == "" {
		return 0, fmt.Errorf("empty score")
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid score %q", s)
	}
	return v, nil
}

// FormatScore renders a score with one fractional digit, e.g. "8.5".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
