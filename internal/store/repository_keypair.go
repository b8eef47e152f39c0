// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

const keypairsTable = "custodial_keypairs"

// keypairRepository is the SQL implementation of [KeypairStore]. Expiry is
// enforced on read by comparing expires_at_ms with the current time; expired
// rows are removed later by PurgeExpired.
type keypairRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewKeypairRepository constructs a [KeypairStore] backed by the
// custodial_keypairs table.
func NewKeypairRepository(db *DB, logger *logger.Logger) *keypairRepository {
	logger.Debug().Msg("creating keypair repository")
	return &keypairRepository{DB: db, now: time.Now, logger: logger}
}

// Put upserts the record and moves its expiry to now+ttl.
func (r *keypairRepository) Put(ctx context.Context, userID string, record models.CustodialKeypair, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	if err := checkPut(userID, int64(ttl)); err != nil {
		return err
	}

	value, err := encodeKeypair(record)
	if err != nil {
		return err
	}

	expiresAt := r.now().Add(ttl).UnixMilli()
	query, args, err := r.builder.
		Insert(keypairsTable).
		Columns("storage_key", "value", "expires_at_ms").
		Values(KeypairKey(userID), value, expiresAt).
		Suffix("ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, expires_at_ms = excluded.expires_at_ms").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "keypairRepository.Put").
			Str("user_id", userID).
			Msg("failed to upsert keypair")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the unexpired record for userID, or (nil, nil).
func (r *keypairRepository) Get(ctx context.Context, userID string) (*models.CustodialKeypair, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, ErrEmptyUserID
	}

	query, args, err := r.builder.
		Select("value").
		From(keypairsTable).
		Where("storage_key = ?", KeypairKey(userID)).
		Where("expires_at_ms > ?", r.now().UnixMilli()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "keypairRepository.Get").
			Str("user_id", userID).
			Msg("failed to select keypair")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return decodeKeypair(value)
}

// Delete removes the record. Deleting an absent record is not an error.
func (r *keypairRepository) Delete(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrEmptyUserID
	}

	query, args, err := r.builder.
		Delete(keypairsTable).
		Where("storage_key = ?", KeypairKey(userID)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "keypairRepository.Delete").
			Str("user_id", userID).
			Msg("failed to delete keypair")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// PurgeExpired deletes rows whose expiry is at or before now and returns how
// many were removed.
func (r *keypairRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := r.builder.
		Delete(keypairsTable).
		Where("expires_at_ms <= ?", now.UnixMilli()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		res, execErr = r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keypairRepository.PurgeExpired").
			Msg("failed to purge expired keypairs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}
