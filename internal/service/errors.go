// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-fee-sponsor/internal/crypto"
	"github.com/MKhiriev/go-fee-sponsor/internal/validators"
)

// Error kinds of the custody and sponsorship services. Match them with
// errors.Is; most are returned wrapped together with their cause.
var (
	// ErrInvalidUserID is returned for an empty user id.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrKeypairNotFound is returned when signing or address derivation is
	// requested for a user without a keypair.
	ErrKeypairNotFound = errors.New("keypair not found")

	// ErrKeypairGenerationFailed wraps any failure while creating,
	// encrypting or persisting a new keypair.
	ErrKeypairGenerationFailed = errors.New("keypair generation failed")

	// ErrSigningFailed is returned bare: it does not say whether decryption
	// or signing went wrong.
	ErrSigningFailed = errors.New("signing failed")

	// ErrKeyStoreUnavailable wraps key store read and delete failures.
	ErrKeyStoreUnavailable = errors.New("key store unavailable")

	// ErrRateLimitExceeded is retryable after backing off.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrSponsorshipRejected wraps ledger submission failures. The
	// submission is not retried: it may have reached the ledger.
	ErrSponsorshipRejected = errors.New("sponsorship rejected")

	// ErrSponsorWalletUnavailable means the sponsor key could not be loaded.
	// The server refuses to start.
	ErrSponsorWalletUnavailable = errors.New("sponsor wallet unavailable")

	// ErrLedgerUnavailable wraps read-only ledger calls (gas price, balance).
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Errors owned by lower layers, re-exported so callers only import service.
var (
	ErrValidationFailed        = validators.ErrValidationFailed
	ErrDisallowedOperationType = validators.ErrDisallowedOperationType
	ErrGasLimitExceeded        = validators.ErrGasLimitExceeded

	ErrEncryptionFailed = crypto.ErrEncryptionFailed
	ErrDecryptionFailed = crypto.ErrDecryptionFailed
)
