// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package events carries query events from the HTTP layer to the popularity
counters and, optionally, to an external NATS server.

# Flow

	handler --Publish--> Bus (watermill gochannel) --> Consumer --> Recorder (stats.Store)
	                                                           \--> Sink (NATS, breaker-protected)

Handlers publish a QueryEvent after every successful recommendation or
search. Publishing only hands the message to the in-process Watermill
gochannel, so request latency does not depend on the counters or on NATS.
The Consumer runs under the supervisor tree, decodes each message, hands it
to the Recorder and forwards it to the Sink when one is configured.

# Failure Handling

Sink errors are logged and counted, never retried. A gobreaker circuit
breaker opens after a run of consecutive failures so that an unreachable
NATS server costs one fast rejection per event instead of a timeout.
Recorder errors are logged and the message is still acknowledged; counters
are best effort.

# Payload

Events are JSON encoded with goccy/go-json. The event ID doubles as the
Watermill message UUID and, on NATS, as the Nats-Msg-Id header.
*/
package events
