// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

// CustodyService owns the lifecycle of custodial keypairs. No method ever
// returns plaintext private key material.
type CustodyService interface {
	GenerateKeypair(ctx context.Context, userID string) (models.CustodialKeypair, error)
	// GetKeypair returns (nil, nil) when the user has no keypair.
	GetKeypair(ctx context.Context, userID string) (*models.CustodialKeypair, error)
	GetOrCreateKeypair(ctx context.Context, userID string) (models.CustodialKeypair, error)
	// Sign signs message as-is with the user's Ed25519 key.
	Sign(ctx context.Context, userID string, message []byte) ([]byte, error)
	// SignTransaction returns the user's serialized signature over a
	// sponsor-finalized transaction.
	SignTransaction(ctx context.Context, userID string, tx ledger.SponsoredTransaction) (string, error)
	GetAddress(ctx context.Context, userID string) (ledger.Address, error)
	// DeleteKeypair is idempotent.
	DeleteKeypair(ctx context.Context, userID string) error
}

// SponsorshipService co-signs and submits transactions as the fee payer.
// It never calls CustodyService: the user signature is part of the request.
type SponsorshipService interface {
	PrepareTransaction(ctx context.Context, req models.PrepareRequest) (ledger.SponsoredTransaction, error)
	SponsorTransaction(ctx context.Context, req models.SponsorshipRequest) (models.SponsorshipReceipt, error)
	SponsorAddress() ledger.Address
	CheckSponsorBalance(ctx context.Context) (models.SponsorBalance, error)
	Budget(ctx context.Context) models.BudgetSnapshot
}

// SponsorshipServiceWrapper decorates a SponsorshipService, e.g. with
// request validation.
type SponsorshipServiceWrapper interface {
	Wrap(SponsorshipService) SponsorshipService
}

// CustodialExecutionService runs a transaction kind for a wallet-less user:
// it obtains the user's signature from custody and hands the result to the
// sponsor.
type CustodialExecutionService interface {
	ExecuteForUser(ctx context.Context, userID string, req models.ExecuteRequest) (models.SponsorshipReceipt, error)
}

type TokenService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServiceInfo(ctx context.Context) models.ServiceInfo
}

// BudgetCounter tracks gas spent by the sponsor per calendar day.
//
// Reserve must be atomic with its limit check, so concurrent sponsorships
// cannot overrun the day's budget between check and increment.
type BudgetCounter interface {
	Reserve(estimate uint64) (Reservation, error)
	Snapshot() models.BudgetSnapshot
	// Restore sets the amount already used today, e.g. from the
	// sponsorship log after a restart.
	Restore(used uint64)
}

// Reservation is pending budget held for one in-flight sponsorship. Exactly
// one of Commit or Release takes effect; later calls are no-ops.
type Reservation interface {
	// Commit replaces the reservation with the actual cost and returns the
	// day's usage after it.
	Commit(actual uint64) uint64
	Release()
}

// RateLimiter is consulted once per sponsorship, keyed by user address.
type RateLimiter interface {
	Allow(key string, now time.Time) bool
}
