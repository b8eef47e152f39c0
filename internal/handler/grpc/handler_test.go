// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func check(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_SponsorServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, SponsorServiceName))

	h.SetSponsorServing(false)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, SponsorServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
	assert.False(t, h.SponsorServing())

	h.SetSponsorServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, SponsorServiceName))
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))

	// updates after shutdown are ignored
	h.SetSponsorServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, SponsorServiceName))
}
