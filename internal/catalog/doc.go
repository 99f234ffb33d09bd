// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package catalog holds the typed, read-only game catalog shared by the
// recommendation and search paths.
//
// # Data Model
//
// A Catalog is an ordered sequence of Game records, indexed by position
// (0..N-1) and by Rank. Construction validates the catalog invariants:
//
//   - Rank is positive and unique
//   - Title is non-empty
//
// Once built, a Catalog never changes. Accessors return copies so callers
// cannot mutate shared state, which lets the recommendation engine and the
// search service read it concurrently without locking.
//
// # Loading
//
// Format concerns (dd/mm/yyyy release dates, decimal-comma scores, header
// aliases) are isolated in ReadCSV and the Parse* helpers. Rows that fail to
// parse are returned as *RecordError values so the caller can log and skip
// them; they never abort the load.
//
//	games, rejected, err := catalog.LoadFile("games.csv")
//	for _, r := range rejected {
//	    logging.Warn().Err(r).Msg("skipping catalog row")
//	}
//	cat, err := catalog.New(games)
//
// # Errors
//
// Lookup failures are reported with the sentinels in errors.go and should be
// tested with errors.Is.
package catalog
