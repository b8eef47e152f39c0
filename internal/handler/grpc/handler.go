// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the gRPC health service of the fee-sponsor server.
//
// Load balancers probe it to stop routing sponsorships to an instance whose
// sponsor wallet can no longer pay fees.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SponsorServiceName is the health-check service name of the sponsor. The
// empty name reports the whole server.
const SponsorServiceName = "feesponsor.v1.Sponsor"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler starts with every service reported as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(SponsorServiceName, healthpb.HealthCheckResponse_SERVING)
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetSponsorServing flips the sponsor's health status. The server itself
// stays SERVING: custody keeps working while the wallet is low.
func (h *Handler) SetSponsorServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(SponsorServiceName, status)
}

// SponsorServing reports the sponsor's current health status.
func (h *Handler) SponsorServing() bool {
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: SponsorServiceName})
	return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

// Shutdown reports NOT_SERVING for everything, ahead of GracefulStop.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
