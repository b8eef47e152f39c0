// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/adapter"
	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/crypto"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/metrics"
	"github.com/MKhiriev/go-fee-sponsor/internal/ratelimiter"
	"github.com/MKhiriev/go-fee-sponsor/internal/store"
	"github.com/MKhiriev/go-fee-sponsor/internal/validators"
)

// Services is the set of services shared by the HTTP and gRPC handlers and
// the background workers.
type Services struct {
	CustodyService            CustodyService
	SponsorshipService        SponsorshipService
	CustodialExecutionService CustodialExecutionService
	TokenService              TokenService
	AppInfoService            AppInfoService

	Budget *DailyBudget
}

// NewServices builds every service from cfg. The daily budget is restored
// from the sponsorship log when the storage can read it back.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, ledger adapter.LedgerAdapter, m *metrics.SponsorMetrics, logger *logger.Logger) (*Services, error) {
	cipher, err := crypto.NewEnvelopeCipher(cfg.Custody.MasterSecret)
	if err != nil {
		return nil, fmt.Errorf("error creating envelope cipher: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Sponsor.BudgetTimeZone)
	if err != nil {
		return nil, fmt.Errorf("error loading budget time zone: %w", err)
	}

	budget := NewDailyBudget(cfg.Sponsor.DailyGasLimit, loc, time.Now)
	if storages.AccountingReader != nil {
		used, err := storages.AccountingReader.SumFeesSince(ctx, budget.StartOfDay())
		if err != nil {
			return nil, fmt.Errorf("error restoring daily budget: %w", err)
		}
		budget.Restore(used)
		m.SetDailyUsed(used)
		logger.Info().Str("func", "NewServices").Uint64("daily_used", used).Msg("daily budget restored")
	}

	policy := validators.NewSponsorshipPolicy(cfg.Sponsor.AllowedOperationTypes, cfg.Sponsor.DailyGasLimit, cfg.Sponsor.MaxGasPerTransaction)

	sponsorship, err := NewSponsorshipService(cfg.Sponsor, SponsorshipDeps{
		Policy:  policy,
		Ledger:  ledger,
		Budget:  budget,
		Limiter: newRateLimiter(cfg.Sponsor),
		Sink:    storages.AccountingSink,
		Metrics: m,
	}, logger)
	if err != nil {
		return nil, err
	}
	sponsorship = NewSponsorshipValidationService(policy).Wrap(sponsorship)

	appInfo, err := NewAppInfoService(cfg.App, cfg.Sponsor, logger)
	if err != nil {
		return nil, err
	}

	custody := NewCustodyService(storages.KeypairStore, cipher, cfg.Custody, m, logger)

	return &Services{
		CustodyService:            custody,
		SponsorshipService:        sponsorship,
		CustodialExecutionService: NewCustodialExecutionService(custody, sponsorship, policy, logger),
		TokenService:              NewTokenService(cfg.App, logger),
		AppInfoService:            appInfo,
		Budget:                    budget,
	}, nil
}

// newRateLimiter returns nil, meaning unlimited, when rate limiting is off.
func newRateLimiter(cfg config.Sponsor) RateLimiter {
	limiter := ratelimiter.New(cfg.RateLimitRPS, cfg.RateLimitBurst, 0)
	if limiter == nil {
		return nil
	}
	return limiter
}
