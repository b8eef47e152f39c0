// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the key store and the sponsorship log.
var (
	// ErrEmptyUserID is returned when a key store operation is called with an
	// empty user id.
	ErrEmptyUserID = errors.New("empty user id")

	// ErrInvalidTTL is returned by Put when ttl is not positive.
	ErrInvalidTTL = errors.New("ttl must be positive")

	// ErrCorruptedRecord is returned when a stored keypair record cannot be
	// decoded.
	ErrCorruptedRecord = errors.New("stored keypair record is corrupted")

	// ErrUnsupportedDriver is returned by NewConnect for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrAccountingNotSaved is returned when an INSERT into the sponsorship
	// log affects no rows.
	ErrAccountingNotSaved = errors.New("accounting record was not saved")

	// ErrDuplicateRecord is returned when a sponsorship log row with the same
	// id already exists.
	ErrDuplicateRecord = errors.New("accounting record already exists")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
)
