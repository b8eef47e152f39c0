// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("x"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock wrapped", fmt.Errorf("q: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"out of memory", pgError(pgerrcode.OutOfMemory), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"query canceled", pgError(pgerrcode.QueryCanceled), NonRetryable},
		{"admin shutdown", pgError(pgerrcode.AdminShutdown), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"unknown code", pgError("XX999"), NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}

	calls := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return pgError(pgerrcode.SerializationFailure)
	})

	assert.Error(t, err)
	assert.Equal(t, retryAttempts+1, calls)
	assert.Equal(t, Retryable, db.errorClassificator.Classify(err))
}

func TestWithRetry_NilClassifier(t *testing.T) {
	db := &DB{logger: logger.Nop()}

	calls := 0
	_ = db.withRetry(context.Background(), func(context.Context) error {
		calls++
		return pgError(pgerrcode.SerializationFailure)
	})
	assert.Equal(t, 1, calls)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_MemoryFallback(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	assert.NoError(t, err)

	assert.NotNil(t, s.KeypairStore)
	assert.IsType(t, &LogAccountingSink{}, s.AccountingSink)
	assert.Nil(t, s.KeypairPurger)
	assert.Nil(t, s.AccountingReader)
	assert.NoError(t, s.Close())
}

func TestPingWithRetry_RecoversOnceDatabaseIsUp(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	require.NoError(t, pingWithRetry(context.Background(), conn, logger.Nop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingWithRetry_GivesUpWhenContextEnds(t *testing.T) {
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, pingWithRetry(ctx, conn, logger.Nop()))
}
