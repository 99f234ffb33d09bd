// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/gamescout/internal/api"
	"github.com/tomtom215/gamescout/internal/config"
	"github.com/tomtom215/gamescout/internal/supervisor"
)

const testCatalogCSV = `Rank,Game,Release,genre1,genre2,genre3,Score
1,Alpha,01/03/2015,RPG,Action,,8.5
2,Beta,02/06/2018,Action,,,"9,0"
3,Gamma,03/01/2016,RPG,,,7.0
4,Broken,not-a-date,RPG,,,7.0
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	if err := os.WriteFile(path, []byte(testCatalogCSV), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Catalog:  config.CatalogConfig{Path: writeCatalog(t), Source: config.CatalogSourceCSV},
		Database: config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1},
		Recommend: config.RecommendConfig{
			DefaultK:     10,
			MaxK:         100,
			CacheEnabled: true,
			CacheSize:    16,
			CacheTTL:     time.Minute,
		},
		Events: config.EventsConfig{Enabled: true, BufferSize: 16},
		Stats:  config.StatsConfig{Enabled: true, InMemory: true, TopN: 10},
	}
}

func TestLoadCatalog(t *testing.T) {
	sources := []string{config.CatalogSourceCSV, config.CatalogSourceDuckDB}
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Catalog.Source = source

			cat, err := loadCatalog(context.Background(), cfg)
			if err != nil {
				t.Fatalf("loadCatalog() error = %v", err)
			}
			if cat.Len() != 3 {
				t.Errorf("Len() = %d, want 3 (malformed row rejected)", cat.Len())
			}
			if _, err := cat.Lookup("Beta"); err != nil {
				t.Errorf("Lookup(Beta) error = %v", err)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.csv")
		if _, err := loadCatalog(context.Background(), cfg); err == nil {
			t.Error("loadCatalog(missing) error = nil, want error")
		}
	})
}

func TestBuildEngine(t *testing.T) {
	cfg := testConfig(t)
	cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}

	engine, err := buildEngine(cat, &cfg.Recommend)
	if err != nil {
		t.Fatalf("buildEngine() error = %v", err)
	}
	resp, err := engine.RecommendByTitle(context.Background(), "Alpha", 2)
	if err != nil {
		t.Fatalf("RecommendByTitle() error = %v", err)
	}
	if len(resp.Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(resp.Items))
	}

	cfg.Recommend.MaxK = 0
	if _, err := buildEngine(cat, &cfg.Recommend); err == nil {
		t.Error("buildEngine(MaxK=0) error = nil, want error")
	}
}

func TestInitEvents(t *testing.T) {
	tests := []struct {
		name          string
		eventsEnabled bool
		statsEnabled  bool
		wantPublisher bool
		wantStats     bool
	}{
		{"disabled", false, true, false, false},
		{"events without stats", true, false, true, false},
		{"events with stats", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Events.Enabled = tt.eventsEnabled
			cfg.Stats.Enabled = tt.statsEnabled

			p, err := initEvents(cfg)
			if err != nil {
				t.Fatalf("initEvents() error = %v", err)
			}
			defer p.Close()

			tree, err := supervisor.NewSupervisorTree(nil, supervisor.DefaultTreeConfig())
			if err != nil {
				t.Fatalf("NewSupervisorTree() error = %v", err)
			}
			var deps api.Dependencies
			p.Wire(tree, &deps)

			if got := deps.Publisher != nil; got != tt.wantPublisher {
				t.Errorf("Publisher set = %v, want %v", got, tt.wantPublisher)
			}
			if got := deps.Stats != nil; got != tt.wantStats {
				t.Errorf("Stats set = %v, want %v", got, tt.wantStats)
			}
			if deps.Breaker != nil {
				t.Error("Breaker set without a NATS sink")
			}
		})
	}
}
