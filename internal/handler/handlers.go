// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/handler/grpc"
	"github.com/MKhiriev/go-fee-sponsor/internal/handler/http"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/metrics"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
)

// Handlers holds one handler per configured transport. A nil field means
// the transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler per configured transport address.
func NewHandlers(services *service.Services, m *metrics.SponsorMetrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, m, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportAddress
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")
	return handlers, nil
}

// SetSponsorServing forwards the sponsor's health to the gRPC health
// service. Without a gRPC transport it does nothing.
func (h *Handlers) SetSponsorServing(serving bool) {
	if h == nil || h.GRPC == nil {
		return
	}
	h.GRPC.SetSponsorServing(serving)
}
