// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package search

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/validation"
)

// Query is a search request. Nil bounds are filled from the catalog.
type Query struct {
	Keyword  string   `json:"q" validate:"max=200"`
	Genres   []string `json:"genres" validate:"max=3,unique,dive,genre"`
	MinYear  *int     `json:"min_year,omitempty" validate:"omitempty,gte=0,lte=9999"`
	MaxYear  *int     `json:"max_year,omitempty" validate:"omitempty,gte=0,lte=9999"`
	MinScore *float64 `json:"min_score,omitempty" validate:"omitempty,gte=0,lte=1000"`
	MaxScore *float64 `json:"max_score,omitempty" validate:"omitempty,gte=0,lte=1000"`
}

// Criteria is a fully resolved query: every bound is concrete.
type Criteria struct {
	Keyword  string   `json:"keyword"`
	Genres   []string `json:"genres"`
	MinYear  int      `json:"min_year"`
	MaxYear  int      `json:"max_year"`
	MinScore float64  `json:"min_score"`
	MaxScore float64  `json:"max_score"`
}

var registerQueryRules sync.Once

// Validate checks field limits and that explicit ranges are not inverted.
func (q *Query) Validate() *validation.RequestValidationError {
	registerQueryRules.Do(func() {
		validation.RegisterStructValidation(validateQueryRanges, Query{})
	})
	return validation.ValidateStruct(q)
}

func validateQueryRanges(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(Query)
	if !ok {
		return
	}
	if q.MinYear != nil && q.MaxYear != nil && *q.MinYear > *q.MaxYear {
		sl.ReportError(q.MinYear, "min_year", "MinYear", "ltefield", "max_year")
	}
	if q.MinScore != nil && q.MaxScore != nil && *q.MinScore > *q.MaxScore {
		sl.ReportError(q.MinScore, "min_score", "MinScore", "ltefield", "max_score")
	}
}

// Resolve fills unset bounds from the catalog. Default score bounds are
// additionally narrowed to [floor, ceiling] when those are non-zero;
// explicit bounds are never narrowed.
func (q *Query) Resolve(cat *catalog.Catalog, floor, ceiling float64) Criteria {
	minYear, maxYear := cat.YearBounds()
	minScore, maxScore := cat.ScoreBounds()
	if floor != 0 {
		minScore = max(minScore, floor)
	}
	if ceiling != 0 {
		maxScore = min(maxScore, ceiling)
	}

	c := Criteria{
		Keyword:  strings.TrimSpace(q.Keyword),
		Genres:   make([]string, 0, len(q.Genres)),
		MinYear:  minYear,
		MaxYear:  maxYear,
		MinScore: minScore,
		MaxScore: maxScore,
	}
	for _, g := range q.Genres {
		if g = strings.TrimSpace(g); g != "" {
			c.Genres = append(c.Genres, g)
		}
	}
	if q.MinYear != nil {
		c.MinYear = *q.MinYear
	}
	if q.MaxYear != nil {
		c.MaxYear = *q.MaxYear
	}
	if q.MinScore != nil {
		c.MinScore = *q.MinScore
	}
	if q.MaxScore != nil {
		c.MaxScore = *q.MaxScore
	}
	return c
}

// Predicates returns the conjunction described by c.
func (c *Criteria) Predicates() []Predicate {
	return []Predicate{
		TextMatch{Keyword: c.Keyword},
		GenreMatch{Genres: c.Genres},
		DateRangeMatch{MinYear: c.MinYear, MaxYear: c.MaxYear},
		ScoreRangeMatch{Min: c.MinScore, Max: c.MaxScore},
	}
}
