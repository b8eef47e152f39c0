// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Policy rejections. Each names the rule that failed.
var (
	ErrDisallowedOperationType = errors.New("operation type is not sponsored")
	ErrValidationFailed        = errors.New("validation failed")
	ErrGasLimitExceeded        = errors.New("daily gas limit exceeded")
)

// Request field errors. They all wrap ErrValidationFailed.
var (
	ErrInvalidUserAddress   = invalid("user address")
	ErrEmptyTransactionData = invalid("transaction bytes are required")
	ErrEmptyTransactionKind = invalid("transaction kind is required")
	ErrEmptyUserSignature   = invalid("user signature is required")
	ErrEmptyOperationType   = invalid("operation type is required")
)

func invalid(msg string) error {
	return &fieldError{msg: msg}
}

type fieldError struct{ msg string }

func (e *fieldError) Error() string { return ErrValidationFailed.Error() + ": " + e.msg }

func (e *fieldError) Unwrap() error { return ErrValidationFailed }
