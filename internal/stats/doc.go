// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package stats keeps popularity counters for served queries in BadgerDB.
//
// The store counts how often each title was used as a recommendation
// reference and how often each genre was selected in a search. Counters are
// fed by the events consumer and read by GET /api/v1/stats/popular. They
// never hold similarity results; the matrix is rebuilt on every start.
//
// Key layout (values are big-endian uint64):
//
//	title:<title>    reference title counts
//	genre:<label>    searched genre counts
//	total:<kind>     events per kind
package stats
