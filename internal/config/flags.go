// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (postgres, sqlite)
//	-c/-config JSON or YAML config file path
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "24h")
//	-request-timeout inbound request timeout (e.g. "30s")
//	-log-level log level
//	-master-secret custody master secret
//	-keypair-ttl custodial keypair TTL (e.g. "720h")
//	-sponsor-key sponsor private key
//	-rpc-url ledger JSON-RPC URL
//	-rpc-timeout ledger RPC timeout
//	-max-gas max gas budget per transaction
//	-daily-gas-limit daily sponsored fee limit
//	-allowed-ops comma separated operation allow-list
//	-low-balance low balance threshold
//	-budget-tz budget reset time zone
//	-rate-rps per-user sponsorship rate
//	-rate-burst per-user sponsorship burst
//	-balance-interval sponsor balance check interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-fee-sponsor", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig
	var allowedOps string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path (.json, .yaml)")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g. 24h)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&cfg.Custody.MasterSecret, "master-secret", "", "Custody master secret")
	fs.DurationVar(&cfg.Custody.KeypairTTL, "keypair-ttl", 0, "Custodial keypair TTL (e.g. 720h)")
	fs.StringVar(&cfg.Sponsor.PrivateKey, "sponsor-key", "", "Sponsor private key (hex or base64)")
	fs.StringVar(&cfg.Adapter.LedgerRPCURL, "rpc-url", "", "Ledger JSON-RPC URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "rpc-timeout", 0, "Ledger RPC timeout")
	fs.Uint64Var(&cfg.Sponsor.MaxGasPerTransaction, "max-gas", 0, "Max gas budget per transaction")
	fs.Uint64Var(&cfg.Sponsor.DailyGasLimit, "daily-gas-limit", 0, "Daily sponsored fee limit")
	fs.StringVar(&allowedOps, "allowed-ops", "", "Comma separated operation allow-list")
	fs.Uint64Var(&cfg.Sponsor.LowBalanceThreshold, "low-balance", 0, "Low balance threshold")
	fs.StringVar(&cfg.Sponsor.BudgetTimeZone, "budget-tz", "", "Daily budget time zone")
	fs.Float64Var(&cfg.Sponsor.RateLimitRPS, "rate-rps", 0, "Per-user sponsorships per second")
	fs.IntVar(&cfg.Sponsor.RateLimitBurst, "rate-burst", 0, "Per-user sponsorship burst")
	fs.DurationVar(&cfg.Workers.BalanceCheckInterval, "balance-interval", 0, "Sponsor balance check interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.Sponsor.AllowedOperationTypes = splitList(allowedOps)

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns host:port, or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. Hosts other than "localhost" must be IP literals.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
