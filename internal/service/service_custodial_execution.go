// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/validators"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

type custodialExecutionService struct {
	custody     CustodyService
	sponsorship SponsorshipService
	policy      validators.Policy
	validator   validators.Validator

	logger *logger.Logger
}

func NewCustodialExecutionService(custody CustodyService, sponsorship SponsorshipService, policy validators.Policy, logger *logger.Logger) CustodialExecutionService {
	return &custodialExecutionService{
		custody:     custody,
		sponsorship: sponsorship,
		policy:      policy,
		validator:   validators.NewRequestValidator(),
		logger:      logger,
	}
}

// ExecuteForUser provisions the user's keypair on first use, lets the
// sponsor finalize gas data, signs the finalized bytes with the custodial
// key and submits them for sponsorship. Requests the sponsor would refuse
// anyway are turned away before any keypair, ledger call or signature.
func (s *custodialExecutionService) ExecuteForUser(ctx context.Context, userID string, req models.ExecuteRequest) (models.SponsorshipReceipt, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "custodialExecutionService.ExecuteForUser").
		Str("user_id", userID).
		Logger()

	if err := s.validator.Validate(ctx, req, validators.FieldKind); err != nil {
		return models.SponsorshipReceipt{}, err
	}
	if err := s.precheck(ctx, req.OperationType); err != nil {
		log.Info().Err(err).Msg("custodial execution rejected by policy")
		return models.SponsorshipReceipt{}, err
	}

	kp, err := s.custody.GetOrCreateKeypair(ctx, userID)
	if err != nil {
		return models.SponsorshipReceipt{}, err
	}

	address, err := ledger.AddressFromPublicKey(kp.PublicKey)
	if err != nil {
		log.Err(err).Msg("stored public key is invalid")
		return models.SponsorshipReceipt{}, ErrSigningFailed
	}

	tx, err := s.sponsorship.PrepareTransaction(ctx, models.PrepareRequest{
		Sender:        address.String(),
		Kind:          req.Kind,
		OperationType: req.OperationType,
	})
	if err != nil {
		return models.SponsorshipReceipt{}, err
	}

	signature, err := s.custody.SignTransaction(ctx, userID, tx)
	if err != nil {
		return models.SponsorshipReceipt{}, err
	}

	receipt, err := s.sponsorship.SponsorTransaction(ctx, models.SponsorshipRequest{
		TransactionBytes: tx.Bytes(),
		UserAddress:      address.String(),
		UserSignature:    signature,
		OperationType:    req.OperationType,
	})
	if err != nil {
		return models.SponsorshipReceipt{}, err
	}

	log.Debug().Str("digest", receipt.TransactionDigest).Msg("custodial transaction executed")
	return receipt, nil
}

// precheck applies the policy rules that do not depend on the user's
// address or transaction bytes.
func (s *custodialExecutionService) precheck(ctx context.Context, op models.OperationType) error {
	if !s.policy.Allows(op) {
		return fmt.Errorf("%w: %q", ErrDisallowedOperationType, op)
	}
	if used, limit := s.sponsorship.Budget(ctx).DailyUsed, s.policy.DailyGasLimit(); used >= limit {
		return fmt.Errorf("%w: used %d of %d", ErrGasLimitExceeded, used, limit)
	}
	return nil
}
