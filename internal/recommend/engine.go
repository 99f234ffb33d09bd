// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package recommend

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/cache"
	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/logging"
)

// Engine serves recommendations for one immutable catalog.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	catalog *catalog.Catalog
	space   *FeatureSpace
	matrix  *SimilarityMatrix

	builtAt       time.Time
	buildDuration time.Duration

	// Cache (nil when disabled)
	cache *cache.LRU[*Response]

	// Metrics
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// Response is the result of one recommendation request.
type Response struct {
	// Reference is the game recommendations were computed for.
	Reference catalog.Game `json:"reference"`

	// ReferenceIndex is the reference's catalog position.
	ReferenceIndex int `json:"reference_index"`

	// Items is the ordered list of recommendations.
	Items []Recommendation `json:"items"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// K is the effective result count after defaults and caps.
	K int `json:"k"`

	// Candidates is the number of games considered.
	Candidates int `json:"candidates"`

	// LatencyMS is the ranking latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`

	// CacheHit indicates the response was served from cache.
	CacheHit bool `json:"cache_hit"`

	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp"`
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Games           int       `json:"games"`
	Features        int       `json:"features"`
	Requests        int64     `json:"requests"`
	CacheHits       int64     `json:"cache_hits"`
	CacheMisses     int64     `json:"cache_misses"`
	CacheEntries    int       `json:"cache_entries"`
	Errors          int64     `json:"errors"`
	BuiltAt         time.Time `json:"built_at"`
	BuildDurationMS int64     `json:"build_duration_ms"`
}

// NewEngine encodes cat and computes its similarity matrix. This is the only
// expensive step; every later request reads the result.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	space := NewFeatureSpace(cat)
	matrix := ComputeSimilarity(space.Encode(cat))

	e := &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		catalog:       cat,
		space:         space,
		matrix:        matrix,
		builtAt:       time.Now(),
		buildDuration: time.Since(start),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.Size, cfg.Cache.TTL)
	}

	e.logger.Info().
		Int("games", cat.Len()).
		Int("features", space.Len()).
		Dur("build_duration", e.buildDuration).
		Msg("similarity matrix built")

	return e, nil
}

// FeatureSpace returns the engine's feature space.
func (e *Engine) FeatureSpace() *FeatureSpace {
	return e.space
}

// BuildDuration returns how long NewEngine spent encoding and comparing.
func (e *Engine) BuildDuration() time.Duration {
	return e.buildDuration
}

// RecommendByTitle resolves title exactly and recommends games like it.
func (e *Engine) RecommendByTitle(ctx context.Context, title string, k int) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, err := e.catalog.Lookup(title)
	if err != nil {
		e.requestCount.Add(1)
		e.errorCount.Add(1)
		return nil, err
	}
	return e.RecommendByIndex(ctx, idx, k)
}

// RecommendByIndex recommends games like the one at catalog position index.
func (e *Engine) RecommendByIndex(ctx context.Context, index, k int) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	e.requestCount.Add(1)

	k = e.effectiveK(k)
	logger := e.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Int("index", index).
		Int("k", k).
		Logger()

	// Size is checked before the index so that a too-small catalog reports
	// insufficient data for every index, as Recommend does.
	if n := e.catalog.Len(); n < 2 {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("catalog has %d games, need at least 2: %w", n, catalog.ErrInsufficientData)
	}

	key := cacheKey(index, k)
	if resp := e.tryGetCachedResponse(key, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	reference, err := e.catalog.At(index)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	items, err := Recommend(e.catalog, e.matrix, index, k)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	resp := &Response{
		Reference:      reference,
		ReferenceIndex: index,
		Items:          items,
		Metadata: ResponseMetadata{
			K:          k,
			Candidates: e.catalog.Len() - 1,
			LatencyMS:  time.Since(start).Milliseconds(),
			Timestamp:  time.Now(),
		},
	}
	if e.cache != nil {
		e.cache.Add(key, cloneResponse(resp))
	}

	logger.Debug().
		Str("reference", reference.Title).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// effectiveK applies the configured default and cap.
func (e *Engine) effectiveK(k int) int {
	if k <= 0 {
		k = e.config.Limits.DefaultK
	}
	return min(k, e.config.Limits.MaxK)
}

// tryGetCachedResponse returns a copy of a cached response marked as a hit.
func (e *Engine) tryGetCachedResponse(key string, start time.Time) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(key)
	if !ok {
		return nil
	}

	resp := cloneResponse(cached)
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	return resp
}

// cloneResponse deep-copies r so callers never share slices with the cache.
func cloneResponse(r *Response) *Response {
	out := *r
	out.Reference.Genres = slices.Clone(r.Reference.Genres)
	out.Items = make([]Recommendation, len(r.Items))
	for i, item := range r.Items {
		item.Game.Genres = slices.Clone(item.Game.Genres)
		out.Items[i] = item
	}
	return &out
}

func cacheKey(index, k int) string {
	return fmt.Sprintf("idx=%d:k=%d", index, k)
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Games:           e.catalog.Len(),
		Features:        e.space.Len(),
		Requests:        e.requestCount.Load(),
		Errors:          e.errorCount.Load(),
		BuiltAt:         e.builtAt,
		BuildDurationMS: e.buildDuration.Milliseconds(),
	}
	if e.cache != nil {
		s.CacheHits, s.CacheMisses, s.CacheEntries = e.cache.Stats()
	}
	return s
}
