// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/mock"
	"github.com/MKhiriev/go-fee-sponsor/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testStructuredConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:     testAppConfig,
		Custody: config.Custody{MasterSecret: "master", KeypairTTL: time.Hour},
		Sponsor: testSponsorConfig,
	}
}

func TestNewServices_RestoresBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockAccountingReader(ctrl)
	reader.EXPECT().SumFeesSince(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) (uint64, error) {
			assert.Zero(t, since.Hour())
			assert.Zero(t, since.Minute())
			return 42, nil
		})

	storages := &store.Storages{
		KeypairStore:     store.NewMemoryKeypairStore(logger.Nop()),
		AccountingSink:   mock.NewMockAccountingSink(ctrl),
		AccountingReader: reader,
	}

	services, err := NewServices(context.Background(), storages, testStructuredConfig(), mock.NewMockLedgerAdapter(ctrl), nil, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, uint64(42), services.Budget.Snapshot().DailyUsed)
	assert.Equal(t, uint64(42), services.SponsorshipService.Budget(context.Background()).DailyUsed)
	assert.NotNil(t, services.CustodyService)
	assert.NotNil(t, services.CustodialExecutionService)
	assert.NotNil(t, services.TokenService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{KeypairStore: store.NewMemoryKeypairStore(logger.Nop())}
	adapter := mock.NewMockLedgerAdapter(ctrl)

	cfg := testStructuredConfig()
	cfg.Sponsor.PrivateKey = ""
	_, err := NewServices(context.Background(), storages, cfg, adapter, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrSponsorWalletUnavailable)

	cfg = testStructuredConfig()
	cfg.Sponsor.BudgetTimeZone = "Mars/Olympus_Mons"
	_, err = NewServices(context.Background(), storages, cfg, adapter, nil, logger.Nop())
	assert.Error(t, err)

	reader := mock.NewMockAccountingReader(ctrl)
	reader.EXPECT().SumFeesSince(gomock.Any(), gomock.Any()).Return(uint64(0), errors.New("db down"))
	storages.AccountingReader = reader
	_, err = NewServices(context.Background(), storages, testStructuredConfig(), adapter, nil, logger.Nop())
	assert.Error(t, err)
}
