// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/recommend"
	"github.com/tomtom215/gamescout/internal/search"
	"github.com/tomtom215/gamescout/internal/stats"
)

// PopularReader serves the most requested titles and genres.
// *stats.Store implements it.
type PopularReader interface {
	Popular(ctx context.Context, n int) (*stats.Popular, error)
}

// BreakerReporter exposes a circuit breaker state for readiness output.
// *events.NATSSink implements it.
type BreakerReporter interface {
	BreakerState() string
}

// Dependencies are the collaborators a Handler serves from.
// Catalog, Engine and Search are required; the rest are optional.
type Dependencies struct {
	Catalog   *catalog.Catalog
	Engine    *recommend.Engine
	Search    *search.Service
	Stats     PopularReader
	Publisher events.Publisher
	Breaker   BreakerReporter

	// StatsTopN is the popular list size when the request omits limit.
	StatsTopN int
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared parsing, logging and event helpers
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_catalog.go: Games, single game, titles and genre list
//   - handlers_recommend.go: Recommendations by title and by index
//   - handlers_search.go: Multi-predicate search and its default bounds
//   - handlers_stats.go: Popular titles and genres
type Handler struct {
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	search    *search.Service
	stats     PopularReader
	publisher events.Publisher
	breaker   BreakerReporter
	topN      int
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler, err := api.NewHandler(api.Dependencies{
//	    Catalog: cat,
//	    Engine:  engine,
//	    Search:  searchSvc,
//	})
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(":8501", router.SetupChi())
func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if deps.Engine == nil {
		return nil, fmt.Errorf("recommendation engine is required")
	}
	if deps.Search == nil {
		return nil, fmt.Errorf("search service is required")
	}

	topN := deps.StatsTopN
	if topN <= 0 {
		topN = defaultPopularLimit
	}

	return &Handler{
		catalog:   deps.Catalog,
		engine:    deps.Engine,
		search:    deps.Search,
		stats:     deps.Stats,
		publisher: deps.Publisher,
		breaker:   deps.Breaker,
		topN:      topN,
		startTime: time.Now(),
	}, nil
}
