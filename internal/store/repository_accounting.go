// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

const sponsorshipLogTable = "sponsorship_log"

// accountingRepository writes sponsorship receipts to the sponsorship_log
// table and serves the sums used to restore the daily budget on startup.
type accountingRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountingRepository constructs an [AccountingSink] and
// [AccountingReader] backed by the sponsorship_log table.
func NewAccountingRepository(db *DB, logger *logger.Logger) *accountingRepository {
	logger.Debug().Msg("creating accounting repository")
	return &accountingRepository{DB: db, logger: logger}
}

func (r *accountingRepository) Record(ctx context.Context, record models.AccountingRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(sponsorshipLogTable).
		Columns("id", "transaction_digest", "user_address", "operation_type",
			"fee_used", "status", "over_cap", "created_at_ms").
		Values(record.ID, record.TransactionDigest, record.UserAddress, string(record.OperationType),
			int64(record.FeeUsed), string(record.Status), record.OverCap, record.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateRecord, record.ID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountingRepository.Record").
			Str("digest", record.TransactionDigest).
			Msg("failed to insert sponsorship log row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountingNotSaved
	}

	return nil
}

// SumFeesSince returns the total fee recorded at or after since.
func (r *accountingRepository) SumFeesSince(ctx context.Context, since time.Time) (uint64, error) {
	query, args, err := r.builder.
		Select("COALESCE(SUM(fee_used), 0)").
		From(sponsorshipLogTable).
		Where("created_at_ms >= ?", since.UnixMilli()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "accountingRepository.SumFeesSince").
			Msg("failed to sum sponsorship fees")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if total < 0 {
		return 0, nil
	}
	return uint64(total), nil
}

// LogAccountingSink writes receipts to the structured log. It is used when
// no database is configured.
type LogAccountingSink struct {
	logger *logger.Logger
}

func NewLogAccountingSink(logger *logger.Logger) *LogAccountingSink {
	return &LogAccountingSink{logger: logger}
}

func (s *LogAccountingSink) Record(ctx context.Context, record models.AccountingRecord) error {
	s.logger.Info().
		Str("func", "LogAccountingSink.Record").
		Str("id", record.ID).
		Str("digest", record.TransactionDigest).
		Str("user_address", record.UserAddress).
		Str("operation_type", string(record.OperationType)).
		Uint64("fee_used", record.FeeUsed).
		Str("status", string(record.Status)).
		Bool("over_cap", record.OverCap).
		Time("created_at", record.CreatedAt).
		Msg("sponsorship recorded")
	return nil
}
