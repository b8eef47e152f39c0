// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/store"
)

// KeypairPurger deletes expired rows from the SQL key store. Reads already
// ignore them; purging only reclaims space.
type KeypairPurger struct {
	purger   store.ExpiredKeypairPurger
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewKeypairPurger(purger store.ExpiredKeypairPurger, interval time.Duration, logger *logger.Logger) *KeypairPurger {
	return &KeypairPurger{
		purger:   purger,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (p *KeypairPurger) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("keypair purger started")
	tick(ctx, p.interval, p.purge)
}

func (p *KeypairPurger) purge(ctx context.Context) {
	n, err := p.purger.PurgeExpired(ctx, p.now())
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "KeypairPurger.purge").Msg("purging expired keypairs failed")
		}
		return
	}
	if n > 0 {
		p.logger.Info().Int64("purged", n).Msg("expired keypairs purged")
	}
}
