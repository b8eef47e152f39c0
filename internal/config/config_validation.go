// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// validate checks the merged config before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Custody.MasterSecret == "" {
		return fmt.Errorf("%w: master secret is required", ErrInvalidCustodyConfigs)
	}
	if cfg.Custody.KeypairTTL <= 0 {
		return fmt.Errorf("%w: keypair ttl must be positive", ErrInvalidCustodyConfigs)
	}

	if cfg.Sponsor.PrivateKey == "" {
		return fmt.Errorf("%w: sponsor private key is required", ErrInvalidSponsorConfigs)
	}
	if cfg.Sponsor.DailyGasLimit == 0 {
		return fmt.Errorf("%w: daily gas limit must be positive", ErrInvalidSponsorConfigs)
	}
	if len(cfg.Sponsor.AllowedOperationTypes) == 0 {
		return fmt.Errorf("%w: allowed operation types must not be empty", ErrInvalidSponsorConfigs)
	}
	if _, err := time.LoadLocation(cfg.Sponsor.BudgetTimeZone); err != nil {
		return fmt.Errorf("%w: budget time zone: %w", ErrInvalidSponsorConfigs, err)
	}

	if cfg.Adapter.LedgerRPCURL == "" {
		return fmt.Errorf("%w: ledger rpc url is required", ErrInvalidAdapterConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	return nil
}
