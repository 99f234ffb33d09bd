// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

// Package validation provides struct validation using go-playground/validator v10.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - A "genre" tag for genre labels supplied by API clients
//   - RegisterStructValidation for cross-field rules owned by other packages
//   - Error translation to human-readable messages and APIError conversion
//
// # Quick Start
//
//	type SearchRequest struct {
//	    Keyword string   `validate:"max=200"`
//	    Genres  []string `validate:"max=3,unique,dive,genre"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    // respond 400 with apiErr.Code / apiErr.Message
//	}
//
// # Error Format
//
// A single failure becomes one message with field/tag/value details; several
// failures are joined with "; " and listed under details.fields. The code is
// always VALIDATION_ERROR.
package validation
