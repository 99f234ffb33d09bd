// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package database reads the game catalog through DuckDB.

When the catalog source is duckdb, the tabular file is scanned with
DuckDB's read_csv table function instead of encoding/csv. Every column is
read as VARCHAR so that type conversion and row validation stay in
internal/catalog and both sources reject exactly the same rows:

	db, err := database.Open(&cfg.Database)
	games, rejected, err := db.LoadGames(ctx, cfg.Catalog.Path)

The connection is opened with the configured memory limit and thread count.
Nothing is written: the default database path is :memory: and the catalog
is never persisted by this package.
*/
package database
