// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. Durations
// are written as strings ("30s", "720h").
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`
	Custody struct {
		MasterSecret string   `json:"master_secret" yaml:"master_secret"`
		KeypairTTL   Duration `json:"keypair_ttl" yaml:"keypair_ttl"`
	} `json:"custody" yaml:"custody"`
	Sponsor struct {
		PrivateKey            string   `json:"private_key" yaml:"private_key"`
		MaxGasPerTransaction  uint64   `json:"max_gas_per_transaction" yaml:"max_gas_per_transaction"`
		DailyGasLimit         uint64   `json:"daily_gas_limit" yaml:"daily_gas_limit"`
		AllowedOperationTypes []string `json:"allowed_operation_types" yaml:"allowed_operation_types"`
		LowBalanceThreshold   uint64   `json:"low_balance_threshold" yaml:"low_balance_threshold"`
		BudgetTimeZone        string   `json:"budget_time_zone" yaml:"budget_time_zone"`
		RateLimitRPS          float64  `json:"rate_limit_rps" yaml:"rate_limit_rps"`
		RateLimitBurst        int      `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	} `json:"sponsor" yaml:"sponsor"`
	Adapter struct {
		LedgerRPCURL   string   `json:"ledger_rpc_url" yaml:"ledger_rpc_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`
	Storage struct {
		DB struct {
			DSN    string `json:"dsn" yaml:"dsn"`
			Driver string `json:"driver" yaml:"driver"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`
	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`
	Workers struct {
		BalanceCheckInterval Duration `json:"balance_check_interval" yaml:"balance_check_interval"`
		KeypairPurgeInterval Duration `json:"keypair_purge_interval" yaml:"keypair_purge_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON or YAML config, chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	cfg := &StructuredConfig{}

	cfg.App = App{
		TokenSignKey:  f.App.TokenSignKey,
		TokenIssuer:   f.App.TokenIssuer,
		TokenDuration: time.Duration(f.App.TokenDuration),
		Version:       f.App.Version,
		LogLevel:      f.App.LogLevel,
	}
	cfg.Custody = Custody{
		MasterSecret: f.Custody.MasterSecret,
		KeypairTTL:   time.Duration(f.Custody.KeypairTTL),
	}
	cfg.Sponsor = Sponsor{
		PrivateKey:            f.Sponsor.PrivateKey,
		MaxGasPerTransaction:  f.Sponsor.MaxGasPerTransaction,
		DailyGasLimit:         f.Sponsor.DailyGasLimit,
		AllowedOperationTypes: f.Sponsor.AllowedOperationTypes,
		LowBalanceThreshold:   f.Sponsor.LowBalanceThreshold,
		BudgetTimeZone:        f.Sponsor.BudgetTimeZone,
		RateLimitRPS:          f.Sponsor.RateLimitRPS,
		RateLimitBurst:        f.Sponsor.RateLimitBurst,
	}
	cfg.Adapter = Adapter{
		LedgerRPCURL:   f.Adapter.LedgerRPCURL,
		RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
	}
	cfg.Storage.DB = DB{DSN: f.Storage.DB.DSN, Driver: f.Storage.DB.Driver}
	cfg.Server = Server{
		HTTPAddress:    f.Server.HTTPAddress,
		GRPCAddress:    f.Server.GRPCAddress,
		RequestTimeout: time.Duration(f.Server.RequestTimeout),
	}
	cfg.Workers = Workers{
		BalanceCheckInterval: time.Duration(f.Workers.BalanceCheckInterval),
		KeypairPurgeInterval: time.Duration(f.Workers.KeypairPurgeInterval),
	}
	return cfg
}

// Duration is a time.Duration that decodes from "1h"-style strings or from
// integer nanoseconds in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
