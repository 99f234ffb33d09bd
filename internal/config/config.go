// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Configuration Categories:
//
//  1. Data:
//     - Catalog: where the game catalog comes from and how it is read
//     - Database: DuckDB settings used when the catalog source is duckdb
//
//  2. Engines:
//     - Recommend: result counts and response cache
//     - Search: default score range bounds
//
//  3. Infrastructure:
//     - Server: HTTP listener
//     - Security: CORS and rate limiting
//     - Events: in-process query events and the optional NATS sink
//     - Stats: BadgerDB popularity counters
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	games, rejected, err := catalog.LoadFile(cfg.Catalog.Path)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Search    SearchConfig    `koanf:"search"`
	Events    EventsConfig    `koanf:"events"`
	Stats     StatsConfig     `koanf:"stats"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// Catalog sources.
const (
	CatalogSourceCSV    = "csv"
	CatalogSourceDuckDB = "duckdb"
)

// CatalogConfig locates the game catalog.
//
// Environment Variables:
//   - CATALOG_PATH: Path to the catalog CSV file (default: data/games.csv)
//   - CATALOG_SOURCE: csv or duckdb (default: csv)
type CatalogConfig struct {
	// Path is the tabular catalog file.
	Path string `koanf:"path"`

	// Source selects the reader: csv uses encoding/csv, duckdb uses read_csv.
	Source string `koanf:"source"`
}

// DatabaseConfig holds DuckDB settings for the duckdb catalog source.
type DatabaseConfig struct {
	Path      string `koanf:"path"`       // ":memory:" keeps nothing on disk
	MaxMemory string `koanf:"max_memory"` // DuckDB memory limit, e.g. 512MB
	Threads   int    `koanf:"threads"`    // Number of DuckDB threads (0 = use NumCPU)
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_DEFAULT_K: Results when k is omitted (default: 10)
//   - RECOMMEND_MAX_K: Largest k a request may ask for (default: 100)
//   - RECOMMEND_CACHE_ENABLED: Cache responses per reference and k (default: true)
//   - RECOMMEND_CACHE_SIZE: Maximum cached responses (default: 512)
//   - RECOMMEND_CACHE_TTL: Cached response lifetime (default: 10m)
type RecommendConfig struct {
	DefaultK     int           `koanf:"default_k"`
	MaxK         int           `koanf:"max_k"`
	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`
}

// SearchConfig narrows the default score range of searches.
// A zero bound is disabled. Setting 6 and 10 reproduces the fixed score
// slider of the original catalog browser.
type SearchConfig struct {
	ScoreFloor   float64 `koanf:"score_floor"`
	ScoreCeiling float64 `koanf:"score_ceiling"`
}

// EventsConfig holds query event settings.
//
// Environment Variables:
//   - EVENTS_ENABLED: Publish query events (default: true)
//   - EVENTS_BUFFER_SIZE: In-process channel buffer (default: 256)
//   - NATS_URL: Forward events to this NATS server (default: empty, disabled)
//   - NATS_SUBJECT: Subject for forwarded events (default: gamescout.queries)
//   - NATS_PUBLISH_TIMEOUT: Per-publish timeout for the NATS sink (default: 5s)
//   - NATS_BREAKER_FAILURES: Consecutive failures that open the breaker (default: 5)
//   - NATS_BREAKER_TIMEOUT: Time the breaker stays open (default: 30s)
type EventsConfig struct {
	Enabled         bool          `koanf:"enabled"`
	BufferSize      int64         `koanf:"buffer_size"`
	NATSURL         string        `koanf:"nats_url"`
	NATSSubject     string        `koanf:"nats_subject"`
	PublishTimeout  time.Duration `koanf:"publish_timeout"`
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// StatsConfig holds popularity counter settings.
//
// Environment Variables:
//   - STATS_ENABLED: Count queries (requires EVENTS_ENABLED) (default: true)
//   - STATS_PATH: BadgerDB directory (default: data/stats)
//   - STATS_IN_MEMORY: Keep counters in memory only (default: false)
//   - STATS_TOP_N: Default size of the popular lists (default: 10)
type StatsConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
	TopN     int    `koanf:"top_n"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration using Koanf with layered sources.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
