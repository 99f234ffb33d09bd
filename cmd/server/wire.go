// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/gamescout/internal/api"
	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/config"
	"github.com/tomtom215/gamescout/internal/database"
	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/logging"
	"github.com/tomtom215/gamescout/internal/metrics"
	"github.com/tomtom215/gamescout/internal/recommend"
	"github.com/tomtom215/gamescout/internal/stats"
	"github.com/tomtom215/gamescout/internal/supervisor"
	"github.com/tomtom215/gamescout/internal/supervisor/services"
)

// maxLoggedRejects bounds how many rejected rows are logged individually.
const maxLoggedRejects = 20

// loadCatalog reads the catalog file with the configured reader.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	start := time.Now()

	var (
		games    []catalog.Game
		rejected []error
		err      error
	)
	switch cfg.Catalog.Source {
	case config.CatalogSourceDuckDB:
		games, rejected, err = loadWithDuckDB(ctx, &cfg.Database, cfg.Catalog.Path)
	default:
		games, rejected, err = catalog.LoadFile(cfg.Catalog.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog.Path, err)
	}

	for i, rej := range rejected {
		if i == maxLoggedRejects {
			logging.Warn().Int("remaining", len(rejected)-i).Msg("Further rejected rows not logged")
			break
		}
		logging.Warn().Err(rej).Msg("Rejected catalog row")
	}

	cat, err := catalog.New(games)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordCatalogLoad(cfg.Catalog.Source, cat.Len(), len(cat.Genres()), len(rejected), elapsed)
	logging.Info().
		Int("games", cat.Len()).
		Int("genres", len(cat.Genres())).
		Int("rejected", len(rejected)).
		Dur("duration", elapsed).
		Msg("Catalog loaded")
	return cat, nil
}

// loadWithDuckDB reads the catalog through DuckDB's read_csv. The database
// is only needed for the load and is closed afterwards.
func loadWithDuckDB(ctx context.Context, cfg *config.DatabaseConfig, path string) ([]catalog.Game, []error, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	return db.LoadGames(ctx, path)
}

// buildEngine encodes the catalog and computes the similarity matrix.
func buildEngine(cat *catalog.Catalog, cfg *config.RecommendConfig) (*recommend.Engine, error) {
	engine, err := recommend.NewEngine(cat, &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultK: cfg.DefaultK,
			MaxK:     cfg.MaxK,
		},
		Cache: recommend.CacheConfig{
			Enabled: cfg.CacheEnabled,
			Size:    cfg.CacheSize,
			TTL:     cfg.CacheTTL,
		},
	}, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("build recommendation engine: %w", err)
	}
	metrics.SimilarityBuildDuration.Set(engine.BuildDuration().Seconds())
	return engine, nil
}

// eventPipeline holds the optional query event components. A zero
// pipeline is valid and wires nothing.
type eventPipeline struct {
	bus   *events.Bus
	sink  *events.NATSSink
	store *stats.Store
}

// initEvents opens the event bus, the NATS sink and the statistics store
// as configured. Statistics are fed by the consumer, so they require
// events to be enabled.
func initEvents(cfg *config.Config) (*eventPipeline, error) {
	p := &eventPipeline{}
	if !cfg.Events.Enabled {
		logging.Info().Msg("Query events disabled (EVENTS_ENABLED=false)")
		return p, nil
	}

	p.bus = events.NewBus(cfg.Events.BufferSize, logging.WithComponent("event-bus"))

	if cfg.Events.NATSURL != "" {
		sink, err := events.NewNATSSink(events.NATSConfig{
			URL:             cfg.Events.NATSURL,
			Subject:         cfg.Events.NATSSubject,
			PublishTimeout:  cfg.Events.PublishTimeout,
			BreakerFailures: cfg.Events.BreakerFailures,
			BreakerTimeout:  cfg.Events.BreakerTimeout,
		}, logging.WithComponent("nats-sink"))
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("create NATS sink: %w", err)
		}
		p.sink = sink
		logging.Info().Str("subject", cfg.Events.NATSSubject).Msg("Forwarding query events to NATS")
	}

	if cfg.Stats.Enabled {
		store, err := stats.Open(stats.Config{
			Path:     cfg.Stats.Path,
			InMemory: cfg.Stats.InMemory,
		}, logging.WithComponent("stats"))
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("open stats store: %w", err)
		}
		p.store = store
		logging.Info().Bool("in_memory", cfg.Stats.InMemory).Msg("Popularity statistics enabled")
	}
	return p, nil
}

// Wire registers the pipeline's services with the supervisor tree and
// exposes its publisher, statistics and sink breaker to the API.
func (p *eventPipeline) Wire(tree *supervisor.SupervisorTree, deps *api.Dependencies) {
	if p.bus == nil {
		return
	}
	deps.Publisher = p.bus

	// Typed nils must not leak into the consumer's interfaces.
	var recorder events.Recorder
	var sink events.Sink
	if p.store != nil {
		recorder = p.store
		deps.Stats = p.store
		tree.AddDataService(services.NewStatsGCService(p.store, services.DefaultGCInterval, logging.Logger()))
	}
	if p.sink != nil {
		sink = p.sink
		deps.Breaker = p.sink
	}
	tree.AddMessagingService(events.NewConsumer(p.bus, recorder, sink, logging.Logger()))
}

// Close releases the pipeline in reverse order of use.
func (p *eventPipeline) Close() {
	if p.bus != nil {
		if err := p.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
	if p.sink != nil {
		if err := p.sink.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing NATS sink")
		}
	}
	if p.store != nil {
		if err := p.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing stats store")
		}
	}
}
