// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Event kinds.
const (
	KindRecommend = "recommend"
	KindSearch    = "search"
)

// QueryEvent describes one served recommendation or search.
type QueryEvent struct {
	EventID   string    `json:"event_id"`
	Kind      string    `json:"kind"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	// Recommendation fields
	Title string `json:"title,omitempty"`
	K     int    `json:"k,omitempty"`

	// Search fields
	Keyword string   `json:"keyword,omitempty"`
	Genres  []string `json:"genres,omitempty"`

	// Results is the number of games returned.
	Results int `json:"results"`
}

// NewRecommendEvent creates an event for a served recommendation.
func NewRecommendEvent(requestID, title string, k, results int) *QueryEvent {
	return &QueryEvent{
		EventID:   uuid.New().String(),
		Kind:      KindRecommend,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Title:     title,
		K:         k,
		Results:   results,
	}
}

// NewSearchEvent creates an event for a served search.
func NewSearchEvent(requestID, keyword string, genres []string, results int) *QueryEvent {
	return &QueryEvent{
		EventID:   uuid.New().String(),
		Kind:      KindSearch,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Keyword:   keyword,
		Genres:    append([]string(nil), genres...),
		Results:   results,
	}
}

// ErrInvalidEvent is returned for events that fail validation.
var ErrInvalidEvent = errors.New("invalid query event")

// Validate checks the fields every consumer relies on.
func (e *QueryEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	}
	switch e.Kind {
	case KindRecommend:
		if e.Title == "" {
			return fmt.Errorf("%w: title is required for %s events", ErrInvalidEvent, e.Kind)
		}
	case KindSearch:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, e.Kind)
	}
	if e.Results < 0 {
		return fmt.Errorf("%w: results must be non-negative", ErrInvalidEvent)
	}
	return nil
}

// Marshal validates and encodes the event as JSON.
func (e *QueryEvent) Marshal() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a JSON payload.
func Unmarshal(data []byte) (*QueryEvent, error) {
	var e QueryEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
