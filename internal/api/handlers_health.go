// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gamescout/internal/recommend"
)

// HealthStatus is the readiness probe payload.
type HealthStatus struct {
	Status   string          `json:"status"`
	Games    int             `json:"games"`
	Genres   int             `json:"genres"`
	Uptime   float64         `json:"uptime_seconds"`
	Events   bool            `json:"events_enabled"`
	Stats    bool            `json:"stats_enabled"`
	Features int             `json:"features"`
	Engine   recommend.Stats `json:"engine"`

	// Breaker is the NATS sink circuit breaker state; empty without a sink.
	Breaker string `json:"breaker,omitempty"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the process is alive.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// The catalog and similarity matrix are built before the server starts, so
// the service is ready whenever it holds at least two games.
//
// @Summary Kubernetes readiness probe
// @Description Reports catalog size; 503 when the catalog cannot serve recommendations.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	games := h.catalog.Len()
	if games < 2 {
		rw.ServiceUnavailable("catalog holds fewer than two games")
		return
	}

	status := HealthStatus{
		Status:   "ready",
		Games:    games,
		Genres:   len(h.catalog.Genres()),
		Features: h.engine.FeatureSpace().Len(),
		Uptime:   time.Since(h.startTime).Seconds(),
		Events:   h.publisher != nil,
		Stats:    h.stats != nil,
		Engine:   h.engine.Stats(),
	}
	if h.breaker != nil {
		status.Breaker = h.breaker.BreakerState()
	}
	rw.Success(status)
}
