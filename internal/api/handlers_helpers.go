// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/events"
	"github.com/tomtom215/gamescout/internal/logging"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// logRequestError logs an unexpected handler failure with the request ID.
func logRequestError(r *http.Request, err error, code string) {
	logging.CtxErr(r.Context(), err).
		Str("code", code).
		Str("method", r.Method).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg("API error")
}

// paramError describes a query or path parameter that failed to parse.
type paramError struct {
	Param string `json:"field"`
	Value string `json:"value"`
	Want  string `json:"expected"`
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s, got %q", e.Param, e.Want, e.Value)
}

// respondParamError writes a 400 VALIDATION_ERROR for a malformed parameter.
func respondParamError(rw *ResponseWriter, err *paramError) {
	rw.ValidationError(err.Error(), err)
}

// parseIntParam parses an integer parameter. Empty values return def.
func parseIntParam(name, value string, def int) (int, *paramError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &paramError{Param: name, Value: value, Want: "an integer"}
	}
	return n, nil
}

// parseOptionalInt parses an integer parameter that may be absent.
func parseOptionalInt(name, value string) (*int, *paramError) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	n, perr := parseIntParam(name, value, 0)
	if perr != nil {
		return nil, perr
	}
	return &n, nil
}

// parseOptionalScore parses a score parameter that may be absent. A decimal
// comma is accepted as in the catalog file.
func parseOptionalScore(name, value string) (*float64, *paramError) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	f, err := catalog.ParseScore(value)
	if err != nil {
		return nil, &paramError{Param: name, Value: value, Want: "a number"}
	}
	return &f, nil
}

// parseCommaSeparated parses a comma-separated string into a slice
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// publish hands a query event to the configured publisher. Publishing never
// fails the request; the bus logs and counts its own failures.
func (h *Handler) publish(r *http.Request, event *events.QueryEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(r.Context(), event); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("kind", event.Kind).Msg("query event dropped")
	}
}
