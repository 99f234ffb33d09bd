// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/metrics"
)

// Recorder persists consumed events. stats.Store implements it.
type Recorder interface {
	Record(ctx context.Context, event *QueryEvent) error
}

// Subscriber yields the query topic's messages.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// Consumer drains the query topic into a Recorder and an optional Sink.
// It implements suture.Service.
type Consumer struct {
	subscriber     Subscriber
	recorder       Recorder
	sink           Sink
	forwardTimeout time.Duration
	logger         zerolog.Logger
}

// NewConsumer creates a consumer. recorder and sink may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewConsumer(subscriber Subscriber, recorder Recorder, sink Sink, logger zerolog.Logger) *Consumer {
	return &Consumer{
		subscriber:     subscriber,
		recorder:       recorder,
		sink:           sink,
		forwardTimeout: 5 * time.Second,
		logger:         logger.With().Str("component", "event-consumer").Logger(),
	}
}

// Serve subscribes and handles messages until ctx is canceled. A closed
// message channel without cancellation is reported as an error so the
// supervisor restarts the consumer.
func (c *Consumer) Serve(ctx context.Context) error {
	msgs, err := c.subscriber.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", QueryTopic, err)
	}
	c.logger.Info().Str("topic", QueryTopic).Msg("Event consumer started")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("Event consumer stopped")
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("query topic subscription closed")
			}
			c.handle(ctx, msg)
		}
	}
}

// handle processes one message and always acknowledges it. Undecodable
// payloads are dropped; downstream failures are logged.
func (c *Consumer) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	event, err := Unmarshal(msg.Payload)
	if err != nil {
		metrics.RecordEventParseFailed()
		c.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping undecodable query event")
		return
	}
	logger := c.logger.With().
		Str("event_id", event.EventID).
		Str("kind", event.Kind).
		Str("request_id", event.RequestID).
		Logger()

	if c.recorder != nil {
		if err := c.recorder.Record(ctx, event); err != nil {
			logger.Error().Err(err).Msg("Failed to record query event")
		}
	}

	if c.sink != nil {
		fctx, cancel := context.WithTimeout(ctx, c.forwardTimeout)
		err := c.sink.Forward(fctx, event)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to forward query event")
		}
	}

	metrics.RecordEventConsumed(event.Kind)
}

// String implements fmt.Stringer for suture logging.
func (c *Consumer) String() string {
	return "event-consumer"
}
