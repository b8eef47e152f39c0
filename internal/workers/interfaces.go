// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the fee-sponsor's periodic background jobs: the
// sponsor balance monitor and the expired keypair purge.
package workers

import (
	"context"

	"github.com/MKhiriev/go-fee-sponsor/models"
)

// Worker runs until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// BalanceChecker reads the sponsor wallet balance.
type BalanceChecker interface {
	CheckSponsorBalance(ctx context.Context) (models.SponsorBalance, error)
}

// HealthReporter is told whether the sponsor can keep paying fees.
type HealthReporter interface {
	SetSponsorServing(serving bool)
}
