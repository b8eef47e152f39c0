// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed database call
// should be attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default, including for errors the classifier does
	// not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable failures are transient: a dropped connection, a deadlock
	// victim, a server that is starting up or out of connection slots.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx by
// SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError retries whole SQLSTATE classes that describe transient
// conditions:
//
//	08 connection exception
//	40 transaction rollback (serialization failure, deadlock)
//	53 insufficient resources (too many connections, out of memory)
//	57 operator intervention, except query_canceled and admin_shutdown
//
// query_canceled is excluded because the sponsorship log is written with a
// context that is already done when it fires; admin_shutdown because the
// server is going away for longer than the retry window.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	case pgerrcode.IsOperatorIntervention(code):
		if code == pgerrcode.QueryCanceled || code == pgerrcode.AdminShutdown {
			return NonRetryable
		}
		return Retryable
	default:
		return NonRetryable
	}
}

// isUniqueViolation reports a duplicate key, which the repositories turn
// into their own conflict errors.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
