// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the sponsorship policy and the structural checks
// applied to inbound custody and sponsorship requests.
package validators

import (
	"context"

	"github.com/MKhiriev/go-fee-sponsor/models"
)

// Validator checks the shape of a request, optionally restricted to the
// named fields. Unknown request types are rejected.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

// Policy decides whether the sponsor may pay for a transaction. A nil error
// means sponsor it; rejections wrap ErrDisallowedOperationType,
// ErrValidationFailed or ErrGasLimitExceeded.
type Policy interface {
	Evaluate(in PolicyInput) error
	Allows(op models.OperationType) bool
	DailyGasLimit() uint64
	MaxGasPerTransaction() uint64
}

var (
	_ Validator = (*RequestValidator)(nil)
	_ Validator = (*SponsorshipPolicy)(nil)
	_ Policy    = (*SponsorshipPolicy)(nil)
)
