// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package search filters a game catalog by conjunctions of typed predicates.
//
// Filter keeps the games that satisfy every predicate, in catalog order. The
// predicates are:
//
//   - TextMatch: case-insensitive substring of the title
//   - GenreMatch: every requested label appears among the game's genre slots
//   - DateRangeMatch: release year within an inclusive range
//   - ScoreRangeMatch: critic score within an inclusive range
//
// Query is the request-facing form. It is validated with the shared
// validator, and Resolve fills unset bounds from the catalog so an empty
// Query selects the whole catalog.
package search
