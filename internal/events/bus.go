// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gamescout/internal/logging"
	"github.com/tomtom215/gamescout/internal/metrics"
)

// QueryTopic is the in-process topic query events are published on.
const QueryTopic = "queries"

// Metadata keys set on every published message.
const (
	MetadataKind      = "kind"
	MetadataRequestID = "request_id"
)

// Publisher publishes query events. *Bus implements it; handlers accept the
// interface so tests can record events without a bus.
type Publisher interface {
	Publish(ctx context.Context, event *QueryEvent) error
}

// Bus is the in-process query event bus backed by a Watermill gochannel.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger
}

// NewBus creates a bus whose subscriber channels buffer bufferSize messages.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(bufferSize int64, logger zerolog.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            bufferSize,
		BlockPublishUntilSubscriberAck: false,
	}, NewWatermillLogger(logger))

	return &Bus{
		pubsub: pubsub,
		logger: logger.With().Str("component", "events").Logger(),
	}
}

// NewWatermillLogger adapts a zerolog logger to Watermill's logger interface.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewWatermillLogger(logger zerolog.Logger) watermill.LoggerAdapter {
	return watermill.NewSlogLogger(slog.New(logging.NewSlogHandler(logger)))
}

// Publish encodes event and hands it to the bus. Events published while no
// consumer is subscribed are dropped.
func (b *Bus) Publish(ctx context.Context, event *QueryEvent) error {
	data, err := event.Marshal()
	if err != nil {
		metrics.RecordEventPublished(event.Kind, err)
		return err
	}

	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set(MetadataKind, event.Kind)
	if event.RequestID != "" {
		msg.Metadata.Set(MetadataRequestID, event.RequestID)
	}

	if err := b.pubsub.Publish(QueryTopic, msg); err != nil {
		metrics.RecordEventPublished(event.Kind, err)
		logger := b.logger.With().Str("request_id", logging.RequestIDFromContext(ctx)).Logger()
		logger.Warn().Err(err).Str("kind", event.Kind).Msg("Failed to publish query event")
		return fmt.Errorf("publish %s event: %w", event.Kind, err)
	}
	metrics.RecordEventPublished(event.Kind, nil)
	return nil
}

// Subscribe returns the message channel for the query topic. The channel is
// closed when ctx is canceled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, QueryTopic)
}

// Close shuts the bus down. Further publishes fail.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
