// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "none", cfg: config.Server{}, wantErr: errNoTransportAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestHandlers_SetSponsorServing(t *testing.T) {
	assert.NotPanics(t, func() {
		var nilHandlers *Handlers
		nilHandlers.SetSponsorServing(false)

		httpOnly, err := NewHandlers(&service.Services{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
		require.NoError(t, err)
		httpOnly.SetSponsorServing(false)
	})

	h, err := NewHandlers(&service.Services{}, nil, config.Server{GRPCAddress: ":9090"}, logger.Nop())
	require.NoError(t, err)

	h.SetSponsorServing(false)
	assert.False(t, h.GRPC.SponsorServing())
	h.SetSponsorServing(true)
	assert.True(t, h.GRPC.SponsorServing())
}
