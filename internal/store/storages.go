// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
)

// Storages bundles the persistence backends selected by configuration.
//
// With a DSN, keypairs and the sponsorship log live in SQL and
// KeypairPurger and AccountingReader are set. Without one, keypairs live in
// an in-process expiring cache, receipts go to the log, and both optional
// fields are nil.
type Storages struct {
	KeypairStore     KeypairStore
	KeypairPurger    ExpiredKeypairPurger
	AccountingSink   AccountingSink
	AccountingReader AccountingReader

	closers []func() error
}

// NewStorages connects and migrates the configured database, or falls back
// to the in-memory backends when cfg.DB.DSN is empty.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database configured: keypairs are kept in memory only")

		memory := NewMemoryKeypairStore(log)
		return &Storages{
			KeypairStore:   memory,
			AccountingSink: NewLogAccountingSink(log),
			closers:        []func() error{memory.Close},
		}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return newSQLStorages(db, log), nil
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	keypairs := NewKeypairRepository(db, log)
	accounting := NewAccountingRepository(db, log)

	return &Storages{
		KeypairStore:     keypairs,
		KeypairPurger:    keypairs,
		AccountingSink:   accounting,
		AccountingReader: accounting,
		closers:          []func() error{db.Close},
	}
}

// Close releases every backend.
func (s *Storages) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
