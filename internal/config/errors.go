// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates missing token settings or a bad log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidCustodyConfigs indicates a missing master secret or a
	// non-positive keypair TTL.
	ErrInvalidCustodyConfigs = errors.New("invalid custody configuration")

	// ErrInvalidSponsorConfigs indicates a missing sponsor key, an empty
	// allow-list, a zero daily limit or an unknown time zone.
	ErrInvalidSponsorConfigs = errors.New("invalid sponsor configuration")

	// ErrInvalidAdapterConfigs indicates a missing ledger RPC URL.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates an unknown database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
