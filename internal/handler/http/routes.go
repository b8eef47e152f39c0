// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Sponsor and custody routes require a bearer token;
// version, policy info, the sponsor address and metrics are public.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/info", h.getServiceInfo)
		r.Get("/api/sponsor/address", h.getSponsorAddress)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/custody/keypair", h.getOrCreateKeypair)
		r.Get("/api/custody/address", h.getAddress)
		r.Delete("/api/custody/keypair", h.deleteKeypair)

		r.Post("/api/sponsor/prepare", h.prepareTransaction)
		r.Post("/api/sponsor/submit", h.submitTransaction)
		r.Post("/api/sponsor/execute", h.executeTransaction)
		r.Get("/api/sponsor/balance", h.getSponsorBalance)
		r.Get("/api/sponsor/budget", h.getBudget)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
