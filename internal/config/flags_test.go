// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{"empty address", NetAddress{}, ""},
		{"localhost with port", NetAddress{Host: "localhost", Port: 8080}, "localhost:8080"},
		{"IP address with port", NetAddress{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"only port no host", NetAddress{Port: 8080}, ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{"localhost", "localhost:8080", false, "localhost", 8080},
		{"ipv4", "0.0.0.0:9090", false, "0.0.0.0", 9090},
		{"empty host", ":8080", false, "", 8080},
		{"missing port", "localhost", true, "", 0},
		{"non numeric port", "localhost:http", true, "", 0},
		{"zero port", "localhost:0", true, "", 0},
		{"port too large", "localhost:70000", true, "", 0},
		{"hostname", "example.com:80", true, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-d", "file:custody.db",
		"-db-driver", "sqlite",
		"-config", "/etc/sponsor.json",
		"-token-sign-key", "sign",
		"-token-duration", "2h",
		"-master-secret", "master",
		"-keypair-ttl", "24h",
		"-sponsor-key", "0xbeef",
		"-rpc-url", "http://localhost:9000",
		"-max-gas", "1000",
		"-daily-gas-limit", "9000",
		"-allowed-ops", "transfer, mint ,,",
		"-rate-rps", "2.5",
		"-balance-interval", "30s",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, DB{DSN: "file:custody.db", Driver: "sqlite"}, cfg.Storage.DB)
	assert.Equal(t, "/etc/sponsor.json", cfg.FilePath)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "master", cfg.Custody.MasterSecret)
	assert.Equal(t, 24*time.Hour, cfg.Custody.KeypairTTL)
	assert.Equal(t, "0xbeef", cfg.Sponsor.PrivateKey)
	assert.Equal(t, "http://localhost:9000", cfg.Adapter.LedgerRPCURL)
	assert.Equal(t, uint64(1000), cfg.Sponsor.MaxGasPerTransaction)
	assert.Equal(t, uint64(9000), cfg.Sponsor.DailyGasLimit)
	assert.Equal(t, []string{"transfer", "mint"}, cfg.Sponsor.AllowedOperationTypes)
	assert.Equal(t, 2.5, cfg.Sponsor.RateLimitRPS)
	assert.Equal(t, 30*time.Second, cfg.Workers.BalanceCheckInterval)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
