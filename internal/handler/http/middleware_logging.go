// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "unmatched"

// withLogging writes one access-log line per request and feeds the request
// latency histogram. Server errors are logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(lw, r)

		elapsed := time.Since(start)
		route := routePattern(r)
		h.metrics.ObserveHTTPRequest(route, r.Method, lw.status, elapsed)

		log := logger.FromRequest(r)
		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("route", route).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", elapsed).
			Int("size", lw.size).
			Send()
	})
}

// routePattern is read after the handler ran, once chi has filled in the
// full pattern.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
