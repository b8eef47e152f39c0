// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
)

// BalanceMonitor polls the sponsor balance. The sponsorship service updates
// the balance gauge and logs a low balance; the monitor additionally takes
// the sponsor out of rotation via health while the balance stays low.
type BalanceMonitor struct {
	checker  BalanceChecker
	health   HealthReporter
	interval time.Duration

	logger *logger.Logger
}

// NewBalanceMonitor returns a monitor polling every interval. health may be
// nil when no gRPC transport is configured.
func NewBalanceMonitor(checker BalanceChecker, health HealthReporter, interval time.Duration, logger *logger.Logger) *BalanceMonitor {
	return &BalanceMonitor{
		checker:  checker,
		health:   health,
		interval: interval,
		logger:   logger,
	}
}

func (m *BalanceMonitor) Run(ctx context.Context) {
	m.logger.Info().Dur("interval", m.interval).Msg("balance monitor started")
	tick(ctx, m.interval, m.check)
}

// check leaves the health status unchanged when the ledger cannot be read:
// an unreachable node says nothing about the balance.
func (m *BalanceMonitor) check(ctx context.Context) {
	balance, err := m.checker.CheckSponsorBalance(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Err(err).Str("func", "BalanceMonitor.check").Msg("balance check failed")
		}
		return
	}

	if m.health != nil {
		m.health.SetSponsorServing(!balance.Low)
	}
}
