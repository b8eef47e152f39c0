// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"hash/fnv"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/crypto"
	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/metrics"
	"github.com/MKhiriev/go-fee-sponsor/internal/store"
	"github.com/MKhiriev/go-fee-sponsor/models"
	"golang.org/x/sync/singleflight"
)

// custodyService is the default [CustodyService].
//
// Private keys exist in plaintext only inside withSeed, and the buffer is
// zeroed before withSeed returns.
type custodyService struct {
	keypairs store.KeypairStore
	cipher   crypto.EnvelopeCipher
	ttl      time.Duration

	// creating collapses concurrent get-or-create calls per user id.
	creating singleflight.Group
	// records serializes store writes for one user id, so a refresh cannot
	// resurrect a deleted record or revert a regenerated one.
	records recordLocks

	rand    io.Reader
	now     func() time.Time
	metrics *metrics.SponsorMetrics
	logger  *logger.Logger
}

// NewCustodyService wires the key store and envelope cipher. Records are
// written with cfg.KeypairTTL, refreshed on every use.
func NewCustodyService(keypairs store.KeypairStore, cipher crypto.EnvelopeCipher, cfg config.Custody, m *metrics.SponsorMetrics, logger *logger.Logger) CustodyService {
	return &custodyService{
		keypairs: keypairs,
		cipher:   cipher,
		ttl:      cfg.KeypairTTL,
		rand:     rand.Reader,
		now:      time.Now,
		metrics:  m,
		logger:   logger,
	}
}

// GenerateKeypair creates a fresh keypair and overwrites any existing
// record for userID.
func (s *custodyService) GenerateKeypair(ctx context.Context, userID string) (models.CustodialKeypair, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.CustodialKeypair{}, ErrInvalidUserID
	}

	kp, err := ledger.GenerateKeyPair(s.rand)
	if err != nil {
		log.Err(err).Str("func", "custodyService.GenerateKeypair").Msg("key generation failed")
		return models.CustodialKeypair{}, fmt.Errorf("%w: %w", ErrKeypairGenerationFailed, err)
	}
	defer kp.Wipe()

	exported := kp.Export()
	encrypted, err := s.cipher.Encrypt(exported)
	crypto.Wipe(exported)
	if err != nil {
		log.Err(err).Str("func", "custodyService.GenerateKeypair").Msg("key encryption failed")
		return models.CustodialKeypair{}, fmt.Errorf("%w: %w", ErrKeypairGenerationFailed, err)
	}

	nowMs := s.now().UnixMilli()
	record := models.CustodialKeypair{
		UserID:              userID,
		PublicKey:           kp.PublicKey(),
		EncryptedPrivateKey: encrypted,
		CreatedAt:           nowMs,
		LastUsedAt:          nowMs,
	}

	unlock := s.records.lock(userID)
	err = s.keypairs.Put(ctx, userID, record, s.ttl)
	unlock()
	if err != nil {
		log.Err(err).Str("func", "custodyService.GenerateKeypair").Str("user_id", userID).Msg("failed to persist keypair")
		return models.CustodialKeypair{}, fmt.Errorf("%w: %w", ErrKeypairGenerationFailed, err)
	}

	s.metrics.ObserveKeypair("generate")
	log.Info().
		Str("func", "custodyService.GenerateKeypair").
		Str("user_id", userID).
		Str("address", kp.Address().String()).
		Msg("custodial keypair generated")

	return record, nil
}

// GetKeypair reads the record and, if present, bumps LastUsedAt and
// re-persists it to refresh its expiry. A failed refresh is logged only.
func (s *custodyService) GetKeypair(ctx context.Context, userID string) (*models.CustodialKeypair, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, ErrInvalidUserID
	}

	unlock := s.records.lock(userID)
	defer unlock()

	record, err := s.keypairs.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyStoreUnavailable, err)
	}
	if record == nil {
		return nil, nil
	}

	record.LastUsedAt = s.now().UnixMilli()
	if err = s.keypairs.Put(ctx, userID, *record, s.ttl); err != nil {
		log.Warn().Err(err).
			Str("func", "custodyService.GetKeypair").
			Str("user_id", userID).
			Msg("failed to refresh keypair expiry")
	}

	return record, nil
}

// GetOrCreateKeypair returns the user's keypair, generating it on first
// use. Concurrent callers for the same user id share one generation.
func (s *custodyService) GetOrCreateKeypair(ctx context.Context, userID string) (models.CustodialKeypair, error) {
	if userID == "" {
		return models.CustodialKeypair{}, ErrInvalidUserID
	}

	// the shared call must not die with whichever caller started it
	flightCtx := context.WithoutCancel(ctx)

	v, err, _ := s.creating.Do(userID, func() (any, error) {
		existing, err := s.GetKeypair(flightCtx, userID)
		if err != nil {
			return models.CustodialKeypair{}, err
		}
		if existing != nil {
			return *existing, nil
		}
		return s.GenerateKeypair(flightCtx, userID)
	})
	if err != nil {
		return models.CustodialKeypair{}, err
	}

	record := v.(models.CustodialKeypair)
	record.PublicKey = bytes.Clone(record.PublicKey)
	return record, nil
}

// Sign signs message with the user's key, without any intent prefix.
func (s *custodyService) Sign(ctx context.Context, userID string, message []byte) ([]byte, error) {
	var sig []byte
	err := s.withSeed(ctx, userID, func(record *models.CustodialKeypair, seed []byte) error {
		var signErr error
		sig, signErr = ledger.SignMessageWithSeed(seed, message)
		return signErr
	})
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// SignTransaction signs a sponsor-finalized transaction. The transaction's
// sender must be the user's own address.
func (s *custodyService) SignTransaction(ctx context.Context, userID string, tx ledger.SponsoredTransaction) (string, error) {
	if tx.IsZero() {
		return "", fmt.Errorf("%w: transaction is not sponsor-finalized", ErrValidationFailed)
	}

	var sig string
	err := s.withSeed(ctx, userID, func(record *models.CustodialKeypair, seed []byte) error {
		addr, err := ledger.AddressFromPublicKey(record.PublicKey)
		if err != nil {
			return err
		}
		if addr != tx.Sender() {
			return errSenderMismatch
		}

		sig, err = ledger.SignTransactionWithSeed(seed, tx.Bytes())
		return err
	})
	if err != nil {
		return "", err
	}
	return sig, nil
}

var errSenderMismatch = fmt.Errorf("%w: transaction sender is not the user", ErrValidationFailed)

// withSeed loads the user's record, decrypts the private key and passes
// its seed to fn. The decrypted buffer is wiped when fn returns. Any
// failure other than a missing record or a sender mismatch is reported as
// bare ErrSigningFailed.
func (s *custodyService) withSeed(ctx context.Context, userID string, fn func(record *models.CustodialKeypair, seed []byte) error) error {
	log := logger.FromContext(ctx)

	record, err := s.GetKeypair(ctx, userID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrKeypairNotFound
	}

	plaintext, err := s.cipher.Decrypt(record.EncryptedPrivateKey)
	if err != nil {
		log.Error().Str("func", "custodyService.withSeed").Str("user_id", userID).Msg("signing failed")
		return ErrSigningFailed
	}
	defer crypto.Wipe(plaintext)

	seed, err := ledger.SeedFromExport(plaintext)
	if err != nil {
		log.Error().Str("func", "custodyService.withSeed").Str("user_id", userID).Msg("signing failed")
		return ErrSigningFailed
	}

	// a record whose public key does not match its private key would sign
	// for an address other than the one it reports
	pub, err := ledger.PublicKeyFromSeed(seed)
	if err != nil || !bytes.Equal(pub, record.PublicKey) {
		log.Error().Str("func", "custodyService.withSeed").Str("user_id", userID).Msg("signing failed")
		return ErrSigningFailed
	}

	if err = fn(record, seed); err != nil {
		if err == errSenderMismatch {
			return err
		}
		log.Error().Str("func", "custodyService.withSeed").Str("user_id", userID).Msg("signing failed")
		return ErrSigningFailed
	}

	s.metrics.ObserveKeypair("sign")
	return nil
}

// GetAddress derives the ledger address from the stored public key.
func (s *custodyService) GetAddress(ctx context.Context, userID string) (ledger.Address, error) {
	if userID == "" {
		return ledger.Address{}, ErrInvalidUserID
	}

	record, err := s.keypairs.Get(ctx, userID)
	if err != nil {
		return ledger.Address{}, fmt.Errorf("%w: %w", ErrKeyStoreUnavailable, err)
	}
	if record == nil {
		return ledger.Address{}, ErrKeypairNotFound
	}

	addr, err := ledger.AddressFromPublicKey(record.PublicKey)
	if err != nil {
		return ledger.Address{}, fmt.Errorf("%w: stored public key: %w", ErrKeyStoreUnavailable, err)
	}
	return addr, nil
}

// DeleteKeypair removes the user's record. Deleting a missing record
// succeeds.
func (s *custodyService) DeleteKeypair(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	unlock := s.records.lock(userID)
	err := s.keypairs.Delete(ctx, userID)
	unlock()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "custodyService.DeleteKeypair").
			Str("user_id", userID).
			Msg("failed to delete keypair")
		return fmt.Errorf("%w: %w", ErrKeyStoreUnavailable, err)
	}

	s.metrics.ObserveKeypair("delete")
	return nil
}

// recordLocks spreads user ids over a fixed set of mutexes.
type recordLocks [64]sync.Mutex

func (l *recordLocks) lock(userID string) (unlock func()) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	m := &l[h.Sum32()%uint32(len(l))]
	m.Lock()
	return m.Unlock
}
