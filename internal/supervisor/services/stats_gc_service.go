// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultGCInterval is how often the statistics value log is compacted.
const DefaultGCInterval = 5 * time.Minute

// GarbageCollector is satisfied by *stats.Store.
type GarbageCollector interface {
	RunGC() error
}

// StatsGCService periodically reclaims space in the statistics store.
// GC failures are logged and retried on the next tick; they never
// restart the service.
type StatsGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewStatsGCService creates the service. A non-positive interval means DefaultGCInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *StatsGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &StatsGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "stats-gc").Logger(),
	}
}

// Serve implements suture.Service.
func (s *StatsGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("stats GC service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.store.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("stats value log GC failed")
			}
		}
	}
}

// String implements fmt.Stringer for suture log messages.
func (s *StatsGCService) String() string {
	return "stats-gc"
}
