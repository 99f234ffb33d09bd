// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

/*
Package supervisor provides process supervision for Gamescout using suture v4.

# Overview

The supervisor tree organizes services into three layers for failure isolation:

	RootSupervisor ("gamescout")
	├── DataSupervisor ("data-layer")
	│   └── StatsGCService (if STATS_ENABLED and not in memory)
	├── MessagingSupervisor ("messaging-layer")
	│   └── events.Consumer (if EVENTS_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog and similarity matrix are built before the tree starts, so a
restarted service never rebuilds them.

Supervisor events (service failures, restarts, backoff) are logged through
sutureslog, which takes a *slog.Logger; logging.NewSlogLogger bridges it to
the zerolog output used everywhere else.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMessagingService(consumer)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

See Also:

  - internal/supervisor/services: suture.Service wrappers
  - internal/events: Consumer implements suture.Service directly
*/
package supervisor
