// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// PolicyInput is everything the sponsorship policy looks at.
type PolicyInput struct {
	OperationType    models.OperationType
	UserAddress      string
	TransactionBytes []byte
	DailyUsed        uint64
}

// SponsorshipPolicy decides whether the sponsor may pay for a transaction.
// It does no I/O and holds no mutable state.
type SponsorshipPolicy struct {
	allowed              map[models.OperationType]struct{}
	dailyGasLimit        uint64
	maxGasPerTransaction uint64
}

// NewSponsorshipPolicy builds a policy from the configured allow-list and
// limits. maxGasPerTransaction is not enforced here: the actual cost of a
// transaction is only known after execution.
func NewSponsorshipPolicy(allowed []string, dailyGasLimit, maxGasPerTransaction uint64) *SponsorshipPolicy {
	set := make(map[models.OperationType]struct{}, len(allowed))
	for _, op := range allowed {
		set[models.OperationType(op)] = struct{}{}
	}
	return &SponsorshipPolicy{
		allowed:              set,
		dailyGasLimit:        dailyGasLimit,
		maxGasPerTransaction: maxGasPerTransaction,
	}
}

func (p *SponsorshipPolicy) DailyGasLimit() uint64 { return p.dailyGasLimit }

func (p *SponsorshipPolicy) MaxGasPerTransaction() uint64 { return p.maxGasPerTransaction }

// Allows reports whether op is on the allow-list.
func (p *SponsorshipPolicy) Allows(op models.OperationType) bool {
	_, ok := p.allowed[op]
	return ok
}

// Evaluate runs the checks in a fixed order and returns the first failure:
// operation type, user address, transaction bytes, daily budget.
func (p *SponsorshipPolicy) Evaluate(in PolicyInput) error {
	if !p.Allows(in.OperationType) {
		return fmt.Errorf("%w: %q", ErrDisallowedOperationType, in.OperationType)
	}
	if err := ledger.ValidateAddress(in.UserAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUserAddress, err)
	}
	if len(in.TransactionBytes) == 0 {
		return ErrEmptyTransactionData
	}
	if in.DailyUsed >= p.dailyGasLimit {
		return fmt.Errorf("%w: used %d of %d", ErrGasLimitExceeded, in.DailyUsed, p.dailyGasLimit)
	}
	return nil
}

// Validate implements [Validator] for PolicyInput values. Field scoping is
// not supported: the policy is all-or-nothing.
func (p *SponsorshipPolicy) Validate(_ context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}
	switch in := obj.(type) {
	case PolicyInput:
		return p.Evaluate(in)
	case *PolicyInput:
		return p.Evaluate(*in)
	default:
		return ErrUnsupportedType
	}
}
