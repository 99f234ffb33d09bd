// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package stats

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/metrics"
)

// Key prefixes for BadgerDB storage
const (
	titlePrefix = "title:"
	genrePrefix = "genre:"
	totalPrefix = "total:"
)

// Buckets accepted by Top.
const (
	BucketTitles = "titles"
	BucketGenres = "genres"
)

// maxConflictRetries bounds retries of a counter transaction on ErrConflict.
const maxConflictRetries = 3

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("stats store is closed")

// ErrUnknownBucket is returned by Top for an unknown bucket name.
var ErrUnknownBucket = errors.New("unknown stats bucket")

// Config configures the store.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps counters in memory only.
	InMemory bool
}

// Count is one counter value.
type Count struct {
	Key   string `json:"key"`
	Count uint64 `json:"count"`
}

// Popular is the response of Popular.
type Popular struct {
	Titles []Count           `json:"titles"`
	Genres []Count           `json:"genres"`
	Totals map[string]uint64 `json:"totals"`
}

// Store is a BadgerDB-backed popularity counter store. It implements
// events.Recorder.
type Store struct {
	db       *badger.DB
	inMemory bool
	logger   zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the store.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("stats path is required unless in-memory")
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Store{
		db:       db,
		inMemory: cfg.InMemory,
		logger:   logger.With().Str("component", "stats").Logger(),
	}, nil
}

// Record increments the counters for one query event.
func (s *Store) Record(ctx context.Context, event *events.QueryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := []string{totalPrefix + event.Kind}
	titles, genres := 0, 0
	switch event.Kind {
	case events.KindRecommend:
		keys = append(keys, titlePrefix+event.Title)
		titles = 1
	case events.KindSearch:
		seen := make(map[string]bool, len(event.Genres))
		for _, g := range event.Genres {
			g = strings.TrimSpace(g)
			if g == "" || seen[g] {
				continue
			}
			seen[g] = true
			keys = append(keys, genrePrefix+g)
			genres++
		}
	}

	if err := s.increment(keys); err != nil {
		metrics.RecordStatsError("increment")
		return err
	}
	if titles > 0 {
		metrics.RecordStatsUpdate("title", titles)
	}
	if genres > 0 {
		metrics.RecordStatsUpdate("genre", genres)
	}
	return nil
}

// increment adds one to every key in a single transaction.
func (s *Store) increment(keys []string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			for _, k := range keys {
				n, err := readCounter(txn, []byte(k))
				if err != nil {
					return err
				}
				if err := txn.Set([]byte(k), encodeCounter(n+1)); err != nil {
					return fmt.Errorf("set %s: %w", k, err)
				}
			}
			return nil
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("increment counters: %w", err)
	}
	return nil
}

// Top returns the n largest counters in bucket, ordered by count descending
// then key ascending. n <= 0 returns every counter.
func (s *Store) Top(ctx context.Context, bucket string, n int) ([]Count, error) {
	var prefix string
	switch bucket {
	case BucketTitles:
		prefix = titlePrefix
	case BucketGenres:
		prefix = genrePrefix
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBucket, bucket)
	}

	counts, err := s.scan(ctx, prefix)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts, nil
}

// Popular returns the top n titles and genres and the per-kind totals.
func (s *Store) Popular(ctx context.Context, n int) (*Popular, error) {
	titles, err := s.Top(ctx, BucketTitles, n)
	if err != nil {
		return nil, err
	}
	genres, err := s.Top(ctx, BucketGenres, n)
	if err != nil {
		return nil, err
	}
	totals, err := s.scan(ctx, totalPrefix)
	if err != nil {
		return nil, err
	}

	p := &Popular{
		Titles: titles,
		Genres: genres,
		Totals: make(map[string]uint64, len(totals)),
	}
	for _, c := range totals {
		p.Totals[c.Key] = c.Count
	}
	return p, nil
}

// scan reads every counter under prefix. Keys are returned without it.
func (s *Store) scan(ctx context.Context, prefix string) ([]Count, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	counts := []Count{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			var n uint64
			if err := item.Value(func(val []byte) error {
				var derr error
				n, derr = decodeCounter(val)
				return derr
			}); err != nil {
				return fmt.Errorf("read %s: %w", item.Key(), err)
			}
			counts = append(counts, Count{
				Key:   strings.TrimPrefix(string(item.KeyCopy(nil)), prefix),
				Count: n,
			})
		}
		return nil
	})
	if err != nil {
		metrics.RecordStatsError("scan")
		return nil, err
	}
	return counts, nil
}

// RunGC reclaims value log space. It is a no-op for in-memory stores.
func (s *Store) RunGC() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	if s.inMemory {
		return nil
	}

	rewrites := 0
	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			break
		}
		if err != nil {
			metrics.RecordStatsError("gc")
			return fmt.Errorf("value log gc: %w", err)
		}
		rewrites++
	}
	if rewrites > 0 {
		s.logger.Debug().Int("rewrites", rewrites).Msg("Value log GC reclaimed space")
	}
	return nil
}

// Close closes the database. It is safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// readCounter returns the stored value of key, or 0 when absent.
func readCounter(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	var n uint64
	err = item.Value(func(val []byte) error {
		var derr error
		n, derr = decodeCounter(val)
		return derr
	})
	return n, err
}

func encodeCounter(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

func decodeCounter(val []byte) (uint64, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("corrupt counter: %d bytes", len(val))
	}
	return binary.BigEndian.Uint64(val), nil
}
