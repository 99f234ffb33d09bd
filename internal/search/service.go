// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/logging"
)

// Config narrows the default score range. Zero disables a bound.
type Config struct {
	ScoreFloor   float64 `json:"score_floor"`
	ScoreCeiling float64 `json:"score_ceiling"`
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.ScoreFloor < 0 || c.ScoreCeiling < 0 {
		return fmt.Errorf("score bounds must be non-negative, got [%v, %v]", c.ScoreFloor, c.ScoreCeiling)
	}
	if c.ScoreFloor != 0 && c.ScoreCeiling != 0 && c.ScoreFloor > c.ScoreCeiling {
		return fmt.Errorf("score_floor (%v) must be <= score_ceiling (%v)", c.ScoreFloor, c.ScoreCeiling)
	}
	return nil
}

// Result is the outcome of one search.
type Result struct {
	// Criteria are the bounds actually applied.
	Criteria Criteria `json:"criteria"`

	// Games are the matches in catalog order.
	Games []catalog.Game `json:"games"`

	// Total is len(Games).
	Total int `json:"total"`
}

// Service runs searches against one immutable catalog.
// It is safe for concurrent use.
type Service struct {
	catalog *catalog.Catalog
	config  Config
	logger  zerolog.Logger
}

// NewService creates a search service over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cat *catalog.Catalog, cfg Config, logger zerolog.Logger) (*Service, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Service{
		catalog: cat,
		config:  cfg,
		logger:  logger.With().Str("component", "search").Logger(),
	}, nil
}

// Defaults returns the criteria an empty query resolves to.
func (s *Service) Defaults() Criteria {
	return (&Query{}).Resolve(s.catalog, s.config.ScoreFloor, s.config.ScoreCeiling)
}

// Search validates q, resolves its defaults and filters the catalog.
// Validation failures are returned as *validation.RequestValidationError.
func (s *Service) Search(ctx context.Context, q *Query) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if verr := q.Validate(); verr != nil {
		return nil, verr
	}

	start := time.Now()
	criteria := q.Resolve(s.catalog, s.config.ScoreFloor, s.config.ScoreCeiling)
	games := Filter(s.catalog, criteria.Predicates()...)

	s.logger.Debug().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Str("keyword", criteria.Keyword).
		Strs("genres", criteria.Genres).
		Int("matches", len(games)).
		Dur("duration", time.Since(start)).
		Msg("search complete")

	return &Result{Criteria: criteria, Games: games, Total: len(games)}, nil
}
