// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package logging provides the process-wide zerolog logger for Gamescout.
//
// A single global logger is configured once from main via Init and read
// everywhere else through the package-level helpers. JSON output is the
// default; console output is meant for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("games", cat.Len()).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Str("title", title).Msg("Unknown reference game")
//
// # Request Context
//
// The HTTP layer stores a request ID in every request context with
// ContextWithRequestID. Ctx and CtxWith copy it onto each log line, and
// the recommendation and search engines attach it to the query events
// they publish so a popularity counter update can be traced back to the
// request that caused it.
//
// # Component Loggers
//
// Long-lived services take a child logger tagged with their component:
//
//	logger := logging.WithComponent("recommend")
//	logger.Info().Dur("build", d).Msg("Similarity matrix built")
//
// # slog Bridge
//
// Suture reports supervisor events through log/slog. NewSlogLogger returns
// an *slog.Logger whose records are written by the zerolog logger so that
// supervisor output shares the same format and level:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated chain
// emits nothing.
package logging
