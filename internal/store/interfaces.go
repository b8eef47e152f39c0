// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeypairStore persists encrypted custodial keypair records with expiry.
//
// Get returns (nil, nil) when the record is absent or has expired. A
// logically expired record is never returned, even if the backend has not
// evicted it yet.
type KeypairStore interface {
	Put(ctx context.Context, userID string, record models.CustodialKeypair, ttl time.Duration) error
	Get(ctx context.Context, userID string) (*models.CustodialKeypair, error)
	Delete(ctx context.Context, userID string) error
}

// ExpiredKeypairPurger removes keypair records whose expiry has passed.
// Only backends that do not evict on their own implement it.
type ExpiredKeypairPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// AccountingSink receives one record per executed sponsorship.
type AccountingSink interface {
	Record(ctx context.Context, record models.AccountingRecord) error
}

// AccountingReader reads aggregated figures back from the sponsorship log.
type AccountingReader interface {
	SumFeesSince(ctx context.Context, since time.Time) (uint64, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
