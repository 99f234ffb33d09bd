// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/gamescout/internal/metrics"
)

// Sink receives consumed events for delivery outside the process.
type Sink interface {
	Forward(ctx context.Context, event *QueryEvent) error
	Close() error
}

// ErrSinkClosed is returned by Forward after Close.
var ErrSinkClosed = errors.New("sink is closed")

// NATSConfig configures the NATS sink.
type NATSConfig struct {
	URL              string
	Subject          string
	PublishTimeout   time.Duration
	BreakerFailures  uint32
	BreakerTimeout   time.Duration
	MaxReconnects    int
	ReconnectWait    time.Duration
	ReconnectBufSize int
}

// NATSSink forwards events to core NATS through a Watermill publisher
// guarded by a circuit breaker.
type NATSSink struct {
	publisher message.Publisher
	breaker   *gobreaker.CircuitBreaker[struct{}]
	subject   string
	logger    zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewNATSSink connects a Watermill NATS publisher. The connection retries in
// the background, so an unreachable server does not fail startup; publishes
// fail until it comes up and the breaker limits the cost of those failures.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewNATSSink(cfg NATSConfig, logger zerolog.Logger) (*NATSSink, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("nats url is required")
	}
	if cfg.Subject == "" {
		return nil, fmt.Errorf("nats subject is required")
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 5 * time.Second
	}
	if cfg.MaxReconnects == 0 {
		cfg.MaxReconnects = -1
	}
	if cfg.ReconnectWait <= 0 {
		cfg.ReconnectWait = 2 * time.Second
	}
	if cfg.ReconnectBufSize == 0 {
		cfg.ReconnectBufSize = 1 << 20
	}

	logger = logger.With().Str("component", "nats-sink").Logger()
	wmLogger := NewWatermillLogger(logger)

	natsOpts := []natsgo.Option{
		natsgo.Name("gamescout"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.Timeout(cfg.PublishTimeout),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.ReconnectBufSize(cfg.ReconnectBufSize),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Warn().Err(err).Msg("NATS disconnected")
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill nats publisher: %w", err)
	}

	return &NATSSink{
		publisher: pub,
		breaker: NewCircuitBreaker(BreakerConfig{
			Name:             "nats-sink",
			FailureThreshold: cfg.BreakerFailures,
			Timeout:          cfg.BreakerTimeout,
		}, logger),
		subject: cfg.Subject,
		logger:  logger,
	}, nil
}

// Forward publishes event on the configured subject.
func (s *NATSSink) Forward(ctx context.Context, event *QueryEvent) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSinkClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := event.Marshal()
	if err != nil {
		return err
	}
	msg := message.NewMessage(event.EventID, data)
	msg.Metadata.Set(natsgo.MsgIdHdr, event.EventID)
	msg.Metadata.Set(MetadataKind, event.Kind)

	_, err = s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, s.publisher.Publish(s.subject, msg)
	})
	metrics.RecordNATSForward(err)
	if err != nil {
		return fmt.Errorf("forward event %s: %w", event.EventID, err)
	}
	return nil
}

// BreakerState reports the breaker state for health output.
func (s *NATSSink) BreakerState() string {
	return s.breaker.State().String()
}

// Close closes the publisher and its NATS connection.
func (s *NATSSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.publisher.Close()
}
