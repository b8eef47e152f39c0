// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/validators"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// SponsorshipValidationService rejects requests before they reach the
// wrapped service. Sponsorship requests go through the policy first, so the
// error returned is always the first policy rule that failed; only then is
// the shape of the user signature checked.
type SponsorshipValidationService struct {
	inner     SponsorshipService
	policy    validators.Validator
	validator validators.Validator
}

func NewSponsorshipValidationService(policy validators.Validator) SponsorshipServiceWrapper {
	return &SponsorshipValidationService{
		policy:    policy,
		validator: validators.NewRequestValidator(),
	}
}

func (v *SponsorshipValidationService) PrepareTransaction(ctx context.Context, req models.PrepareRequest) (ledger.SponsoredTransaction, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldKind); err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("error during prepare request validation: %w", err)
	}

	return v.inner.PrepareTransaction(ctx, req)
}

func (v *SponsorshipValidationService) SponsorTransaction(ctx context.Context, req models.SponsorshipRequest) (models.SponsorshipReceipt, error) {
	err := v.policy.Validate(ctx, validators.PolicyInput{
		OperationType:    req.OperationType,
		UserAddress:      req.UserAddress,
		TransactionBytes: req.TransactionBytes,
		DailyUsed:        v.inner.Budget(ctx).DailyUsed,
	})
	if err != nil {
		return models.SponsorshipReceipt{}, fmt.Errorf("error during sponsorship policy check: %w", err)
	}

	if err = v.validator.Validate(ctx, req, validators.FieldUserSignature); err != nil {
		return models.SponsorshipReceipt{}, fmt.Errorf("error during sponsorship request validation: %w", err)
	}

	return v.inner.SponsorTransaction(ctx, req)
}

func (v *SponsorshipValidationService) SponsorAddress() ledger.Address {
	return v.inner.SponsorAddress()
}

func (v *SponsorshipValidationService) CheckSponsorBalance(ctx context.Context) (models.SponsorBalance, error) {
	return v.inner.CheckSponsorBalance(ctx)
}

func (v *SponsorshipValidationService) Budget(ctx context.Context) models.BudgetSnapshot {
	return v.inner.Budget(ctx)
}

func (v *SponsorshipValidationService) Wrap(inner SponsorshipService) SponsorshipService {
	v.inner = inner
	return v
}
