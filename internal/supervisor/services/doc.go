// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package services provides suture.Service wrappers for Gamescout components.
//
//   - HTTPServerService: net/http server with graceful shutdown
//   - StatsGCService: periodic BadgerDB value log GC for the stats store
//
// The event consumer lives in internal/events and implements
// suture.Service itself.
package services
