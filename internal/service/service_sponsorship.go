// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/adapter"
	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/metrics"
	"github.com/MKhiriev/go-fee-sponsor/internal/store"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
	"github.com/MKhiriev/go-fee-sponsor/internal/validators"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// sponsorshipService is the default [SponsorshipService].
//
// The sponsor key is loaded once and only read afterwards, so concurrent
// co-signing needs no locking.
type sponsorshipService struct {
	sponsorKey *ledger.KeyPair
	sponsor    ledger.Address

	ledger  adapter.LedgerAdapter
	policy  validators.Policy
	budget  BudgetCounter
	limiter RateLimiter
	sink    store.AccountingSink

	lowBalanceThreshold uint64

	ids     *utils.UUIDGenerator
	now     func() time.Time
	metrics *metrics.SponsorMetrics
	logger  *logger.Logger
}

// SponsorshipDeps are the collaborators of the sponsorship service. Limiter
// may be nil, meaning unlimited. A nil Policy is built from the config.
type SponsorshipDeps struct {
	Policy  validators.Policy
	Ledger  adapter.LedgerAdapter
	Budget  BudgetCounter
	Limiter RateLimiter
	Sink    store.AccountingSink
	Metrics *metrics.SponsorMetrics
}

// NewSponsorshipService loads the sponsor key from cfg.PrivateKey. A key
// that cannot be parsed yields ErrSponsorWalletUnavailable.
func NewSponsorshipService(cfg config.Sponsor, deps SponsorshipDeps, logger *logger.Logger) (SponsorshipService, error) {
	key, err := ledger.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSponsorWalletUnavailable, err)
	}

	policy := deps.Policy
	if policy == nil {
		policy = validators.NewSponsorshipPolicy(cfg.AllowedOperationTypes, cfg.DailyGasLimit, cfg.MaxGasPerTransaction)
	}

	s := &sponsorshipService{
		sponsorKey:          key,
		sponsor:             key.Address(),
		ledger:              deps.Ledger,
		policy:              policy,
		budget:              deps.Budget,
		limiter:             deps.Limiter,
		sink:                deps.Sink,
		lowBalanceThreshold: cfg.LowBalanceThreshold,
		ids:                 utils.NewUUIDGenerator(),
		now:                 time.Now,
		metrics:             deps.Metrics,
		logger:              logger,
	}

	logger.Info().
		Str("func", "NewSponsorshipService").
		Str("sponsor", s.sponsor.String()).
		Strs("allowed_operation_types", cfg.AllowedOperationTypes).
		Uint64("daily_gas_limit", cfg.DailyGasLimit).
		Msg("sponsor wallet loaded")

	return s, nil
}

func (s *sponsorshipService) SponsorAddress() ledger.Address {
	return s.sponsor
}

func (s *sponsorshipService) Budget(ctx context.Context) models.BudgetSnapshot {
	return s.budget.Snapshot()
}

// PrepareTransaction fixes the gas data of a transaction kind: the sponsor
// becomes gas owner, the budget is the per-transaction cap and the price is
// the ledger's reference price. The user signs the returned bytes.
func (s *sponsorshipService) PrepareTransaction(ctx context.Context, req models.PrepareRequest) (ledger.SponsoredTransaction, error) {
	log := logger.FromContext(ctx)

	if !s.policy.Allows(req.OperationType) {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %q", ErrDisallowedOperationType, req.OperationType)
	}

	sender, err := ledger.ParseAddress(req.Sender)
	if err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	price, err := s.ledger.GetReferenceGasPrice(ctx)
	if err != nil {
		log.Err(err).Str("func", "sponsorshipService.PrepareTransaction").Msg("failed to fetch reference gas price")
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	tx, err := ledger.NewSponsoredTransaction(ledger.TransactionData{
		Kind:      req.Kind,
		Sender:    sender,
		GasBudget: s.policy.MaxGasPerTransaction(),
		GasPrice:  price,
	}, s.sponsor)
	if err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return tx, nil
}

// SponsorTransaction runs policy, rate limit and signature checks, co-signs
// as gas owner, submits and accounts for the actual fee. Nothing is sent to
// the ledger unless every local check passed.
func (s *sponsorshipService) SponsorTransaction(ctx context.Context, req models.SponsorshipRequest) (models.SponsorshipReceipt, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "sponsorshipService.SponsorTransaction").
		Str("user_address", req.UserAddress).
		Str("operation_type", string(req.OperationType)).
		Logger()
	op := string(req.OperationType)

	err := s.policy.Evaluate(validators.PolicyInput{
		OperationType:    req.OperationType,
		UserAddress:      req.UserAddress,
		TransactionBytes: req.TransactionBytes,
		DailyUsed:        s.budget.Snapshot().DailyUsed,
	})
	if err != nil {
		log.Info().Err(err).Msg("sponsorship rejected by policy")
		s.metrics.ObserveSponsorship(op, metrics.OutcomeRejected)
		return models.SponsorshipReceipt{}, err
	}

	if s.limiter != nil && !s.limiter.Allow(req.UserAddress, s.now()) {
		s.metrics.ObserveSponsorship(op, metrics.OutcomeRejected)
		return models.SponsorshipReceipt{}, ErrRateLimitExceeded
	}

	tx, err := s.finalize(req)
	if err != nil {
		log.Info().Err(err).Msg("sponsorship request is malformed")
		s.metrics.ObserveSponsorship(op, metrics.OutcomeRejected)
		return models.SponsorshipReceipt{}, err
	}

	data := tx.Data()
	estimate := min(data.GasBudget, s.policy.MaxGasPerTransaction())
	if data.GasBudget > s.policy.MaxGasPerTransaction() {
		log.Warn().Uint64("gas_budget", data.GasBudget).Msg("gas budget is above the per-transaction cap")
	}

	reservation, err := s.budget.Reserve(estimate)
	if err != nil {
		log.Info().Err(err).Msg("sponsorship rejected by budget")
		s.metrics.ObserveSponsorship(op, metrics.OutcomeRejected)
		return models.SponsorshipReceipt{}, err
	}

	txBytes := tx.Bytes()
	sponsorSig := s.sponsorKey.SignTransaction(txBytes)

	// once sent, the transaction runs to completion whether or not the
	// caller keeps waiting, and its cost must still be recorded
	submitCtx := context.WithoutCancel(ctx)
	effects, err := s.ledger.ExecuteTransaction(submitCtx, txBytes, []string{req.UserSignature, sponsorSig})
	if err != nil {
		reservation.Release()
		log.Err(err).Str("digest", tx.Digest()).Msg("ledger submission failed")
		s.metrics.ObserveSponsorship(op, metrics.OutcomeFailed)
		return models.SponsorshipReceipt{}, fmt.Errorf("%w: %w", ErrSponsorshipRejected, err)
	}

	fee := effects.GasUsed.Net()
	dailyUsed := reservation.Commit(fee)
	overCap := fee > s.policy.MaxGasPerTransaction()

	receipt := models.SponsorshipReceipt{
		ID:                        s.ids.Generate(),
		TransactionDigest:         effects.Digest,
		SponsoredTransactionBytes: txBytes,
		FeeUsed:                   fee,
		Status:                    models.ReceiptSuccess,
		OverCap:                   overCap,
		DailyUsed:                 dailyUsed,
	}
	if receipt.TransactionDigest == "" {
		receipt.TransactionDigest = tx.Digest()
	}
	if !effects.Succeeded() {
		receipt.Status = models.ReceiptFailed
		receipt.Error = effects.Error
	}

	s.metrics.AddFee(fee)
	s.metrics.SetDailyUsed(dailyUsed)
	s.metrics.ObserveSponsorship(op, string(receipt.Status))
	if overCap {
		s.metrics.IncOverCap()
		log.Warn().
			Str("digest", receipt.TransactionDigest).
			Uint64("fee_used", fee).
			Uint64("max_gas_per_transaction", s.policy.MaxGasPerTransaction()).
			Msg("sponsored transaction exceeded the per-transaction cap")
	}

	s.record(submitCtx, req, receipt)

	log.Info().
		Str("digest", receipt.TransactionDigest).
		Str("status", string(receipt.Status)).
		Uint64("fee_used", fee).
		Uint64("daily_used", dailyUsed).
		Msg("transaction sponsored")

	return receipt, nil
}

// finalize decodes the request bytes, forces the sponsor as gas owner and
// checks that the user signature covers exactly the finalized bytes.
func (s *sponsorshipService) finalize(req models.SponsorshipRequest) (ledger.SponsoredTransaction, error) {
	data, err := ledger.DecodeTransactionData(req.TransactionBytes)
	if err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	user, err := ledger.ParseAddress(req.UserAddress)
	if err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if data.Sender != user {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: sender %s is not the user", ErrValidationFailed, data.Sender)
	}

	tx, err := ledger.NewSponsoredTransaction(data, s.sponsor)
	if err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	signer, err := ledger.VerifyTransactionSignature(tx.Bytes(), req.UserSignature)
	if err != nil {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: user signature: %w", ErrValidationFailed, err)
	}
	if signer != user {
		return ledger.SponsoredTransaction{}, fmt.Errorf("%w: signature is not from %s", ErrValidationFailed, user)
	}

	return tx, nil
}

// record appends the receipt to the accounting sink. The fee is already
// paid, so a sink failure is logged and does not fail the request.
func (s *sponsorshipService) record(ctx context.Context, req models.SponsorshipRequest, receipt models.SponsorshipReceipt) {
	if s.sink == nil {
		return
	}

	err := s.sink.Record(ctx, models.AccountingRecord{
		ID:                receipt.ID,
		TransactionDigest: receipt.TransactionDigest,
		UserAddress:       req.UserAddress,
		OperationType:     req.OperationType,
		FeeUsed:           receipt.FeeUsed,
		Status:            receipt.Status,
		OverCap:           receipt.OverCap,
		CreatedAt:         s.now(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sponsorshipService.record").
			Str("digest", receipt.TransactionDigest).
			Msg("failed to record sponsorship")
	}
}

// CheckSponsorBalance reads the sponsor balance and flags it as low under
// the configured threshold. A low balance is a signal, not an error.
func (s *sponsorshipService) CheckSponsorBalance(ctx context.Context) (models.SponsorBalance, error) {
	balance, err := s.ledger.GetBalance(ctx, s.sponsor)
	if err != nil {
		return models.SponsorBalance{}, fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}

	low := balance < s.lowBalanceThreshold
	s.metrics.SetBalance(balance, low)
	if low {
		logger.FromContext(ctx).Warn().
			Str("func", "sponsorshipService.CheckSponsorBalance").
			Str("sponsor", s.sponsor.String()).
			Uint64("balance", balance).
			Uint64("threshold", s.lowBalanceThreshold).
			Msg("sponsor balance is low")
	}

	return models.SponsorBalance{
		Address:   s.sponsor.String(),
		Balance:   balance,
		Threshold: s.lowBalanceThreshold,
		Low:       low,
		CheckedAt: s.now(),
	}, nil
}
