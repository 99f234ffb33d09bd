// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/config"
)

// testDBSemaphore serializes DuckDB use across tests; concurrent CGO
// connections under CI pressure have been seen to hang.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB opens an in-memory database and holds the semaphore until the
// test completes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		db, err := Open(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "256MB", Threads: 1})
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Open() error = %v", res.err)
		}
		t.Cleanup(func() { _ = res.db.Close() })
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatal("timed out opening DuckDB")
		return nil
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

const referenceCSV = `Rank,Game,Release,genre1,genre2,genre3,Score
1,Alpha,01/03/2015,RPG,Action,,8.5
2,Beta,02/06/2018,Action,,,"9,0"
3,Gamma,03/01/2016,RPG,,,7.0
`

func TestLoadGames(t *testing.T) {
	db := setupTestDB(t)

	games, rejected, err := db.LoadGames(context.Background(), writeCatalog(t, referenceCSV))
	if err != nil {
		t.Fatalf("LoadGames() error = %v", err)
	}
	if len(rejected) != 0 {
		t.Fatalf("rejected = %v, want none", rejected)
	}
	if len(games) != 3 {
		t.Fatalf("len(games) = %d, want 3", len(games))
	}

	tests := []struct {
		i      int
		rank   int
		title  string
		year   int
		score  float64
		genres []string
	}{
		{0, 1, "Alpha", 2015, 8.5, []string{"RPG", "Action", ""}},
		{1, 2, "Beta", 2018, 9.0, []string{"Action", "", ""}},
		{2, 3, "Gamma", 2016, 7.0, []string{"RPG", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			g := games[tt.i]
			if g.Rank != tt.rank || g.Title != tt.title || g.Year() != tt.year || g.Score != tt.score {
				t.Errorf("games[%d] = %+v", tt.i, g)
			}
			for slot, want := range tt.genres {
				if got := g.Slot(slot); got != want {
					t.Errorf("Slot(%d) = %q, want %q", slot, got, want)
				}
			}
		})
	}
}

func TestLoadGames_MatchesCSVReader(t *testing.T) {
	db := setupTestDB(t)

	content := `Rank,Game,Release,Genre1,Genre2,Genre3,Score
1,Alpha,01/03/2015,RPG,,,8.5
x,Bad Rank,01/03/2015,RPG,,,8.5
3,Bad Date,2015-03-01,RPG,,,8.5
1,Rank Collision,01/03/2015,RPG,,,8.5
7,Good,01/03/2016,,,,6.0
`
	games, rejected, err := db.LoadGames(context.Background(), writeCatalog(t, content))
	if err != nil {
		t.Fatalf("LoadGames() error = %v", err)
	}
	wantGames, wantRejected, err := catalog.ReadCSV(strings.NewReader(content))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if len(games) != len(wantGames) {
		t.Fatalf("len(games) = %d, want %d", len(games), len(wantGames))
	}
	for i := range games {
		if games[i].Rank != wantGames[i].Rank || games[i].Title != wantGames[i].Title {
			t.Errorf("games[%d] = %s/%d, want %s/%d", i, games[i].Title, games[i].Rank, wantGames[i].Title, wantGames[i].Rank)
		}
	}

	if len(rejected) != len(wantRejected) {
		t.Fatalf("len(rejected) = %d, want %d", len(rejected), len(wantRejected))
	}
	for i, err := range rejected {
		var got, want *catalog.RecordError
		if !errors.As(err, &got) || !errors.As(wantRejected[i], &want) {
			t.Fatalf("rejected[%d] = %v, want *catalog.RecordError", i, err)
		}
		if got.Line != want.Line || got.Field != want.Field {
			t.Errorf("rejected[%d] = line %d field %s, want line %d field %s", i, got.Line, got.Field, want.Line, want.Field)
		}
		if !errors.Is(err, catalog.ErrMalformedRecord) {
			t.Errorf("rejected[%d] does not wrap ErrMalformedRecord", i)
		}
	}
}

func TestLoadGames_MissingColumns(t *testing.T) {
	db := setupTestDB(t)

	path := writeCatalog(t, "Rank,Game,Score\n1,Alpha,8.5\n")
	if _, _, err := db.LoadGames(context.Background(), path); err == nil || !strings.Contains(err.Error(), "missing columns") {
		t.Errorf("LoadGames() error = %v, want missing columns", err)
	}
}

func TestLoadGames_MissingFile(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := db.LoadGames(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadGames() error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadGames_PathWithQuote(t *testing.T) {
	db := setupTestDB(t)

	dir := filepath.Join(t.TempDir(), "o'brien")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "games.csv")
	if err := os.WriteFile(path, []byte(referenceCSV), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	games, _, err := db.LoadGames(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadGames() error = %v", err)
	}
	if len(games) != 3 {
		t.Errorf("len(games) = %d, want 3", len(games))
	}
}

func TestQuoteLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"data/games.csv", "'data/games.csv'"},
		{"o'brien.csv", "'o''brien.csv'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := quoteLiteral(tt.in); got != tt.want {
			t.Errorf("quoteLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPingAndClose(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Error("Conn() returned nil")
	}
}
