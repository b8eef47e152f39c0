// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/metrics"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.SponsorMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.SponsorMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
