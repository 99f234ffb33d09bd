// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateCatalog,
		c.validateServer,
		c.validateRateLimits,
		c.validateRecommend,
		c.validateSearch,
		c.validateEvents,
		c.validateStats,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateCatalog validates the catalog source
func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	switch c.Catalog.Source {
	case CatalogSourceCSV:
		return nil
	case CatalogSourceDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when CATALOG_SOURCE=duckdb")
		}
		if c.Database.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must be non-negative")
		}
		return nil
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: csv, duckdb")
	}
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateRecommend validates recommendation limits and cache settings
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be positive")
	}
	if r.MaxK < r.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K must be >= RECOMMEND_DEFAULT_K")
	}
	if r.CacheEnabled && (r.CacheSize < 1 || r.CacheTTL <= 0) {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE and RECOMMEND_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

// validateSearch validates the default score range bounds
func (c *Config) validateSearch() error {
	s := c.Search
	if s.ScoreFloor < 0 || s.ScoreCeiling < 0 {
		return fmt.Errorf("SEARCH_SCORE_FLOOR and SEARCH_SCORE_CEILING must be non-negative")
	}
	if s.ScoreFloor != 0 && s.ScoreCeiling != 0 && s.ScoreFloor > s.ScoreCeiling {
		return fmt.Errorf("SEARCH_SCORE_FLOOR must be <= SEARCH_SCORE_CEILING")
	}
	return nil
}

// validateEvents validates the event bus and the optional NATS sink
func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	if c.Events.BufferSize < 0 {
		return fmt.Errorf("EVENTS_BUFFER_SIZE must be non-negative")
	}
	if c.Events.NATSURL == "" {
		return nil
	}
	if err := validateNATSURL(c.Events.NATSURL); err != nil {
		return fmt.Errorf("NATS_URL: %w", err)
	}
	if c.Events.NATSSubject == "" {
		return fmt.Errorf("NATS_SUBJECT is required when NATS_URL is set")
	}
	if c.Events.PublishTimeout <= 0 || c.Events.BreakerTimeout <= 0 {
		return fmt.Errorf("NATS_PUBLISH_TIMEOUT and NATS_BREAKER_TIMEOUT must be positive")
	}
	if c.Events.BreakerFailures == 0 {
		return fmt.Errorf("NATS_BREAKER_FAILURES must be positive")
	}
	return nil
}

// validateStats validates the popularity counter store
func (c *Config) validateStats() error {
	if !c.Stats.Enabled {
		return nil
	}
	if !c.Stats.InMemory && c.Stats.Path == "" {
		return fmt.Errorf("STATS_PATH is required unless STATS_IN_MEMORY=true")
	}
	if c.Stats.TopN < 1 {
		return fmt.Errorf("STATS_TOP_N must be positive")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
