// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/models"
	"github.com/jellydator/ttlcache/v3"
)

// memoryKeypairStore keeps records in an expiring in-process cache. Records
// are lost on restart, so it is only selected when no DSN is configured.
type memoryKeypairStore struct {
	cache  *ttlcache.Cache[string, string]
	logger *logger.Logger
}

// NewMemoryKeypairStore constructs a [KeypairStore] backed by ttlcache.
// Reads do not extend a record's expiry; only Put does. Call Close to stop
// the eviction goroutine.
func NewMemoryKeypairStore(logger *logger.Logger) *memoryKeypairStore {
	logger.Debug().Msg("creating in-memory keypair store")

	cache := ttlcache.New[string, string](
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go cache.Start()

	return &memoryKeypairStore{cache: cache, logger: logger}
}

func (s *memoryKeypairStore) Put(ctx context.Context, userID string, record models.CustodialKeypair, ttl time.Duration) error {
	if err := checkPut(userID, int64(ttl)); err != nil {
		return err
	}

	value, err := encodeKeypair(record)
	if err != nil {
		return err
	}

	s.cache.Set(KeypairKey(userID), value, ttl)
	return nil
}

func (s *memoryKeypairStore) Get(ctx context.Context, userID string) (*models.CustodialKeypair, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	// ttlcache never hands out an item past its expiry, evicted or not.
	item := s.cache.Get(KeypairKey(userID))
	if item == nil {
		return nil, nil
	}

	record, err := decodeKeypair(item.Value())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "memoryKeypairStore.Get").
			Str("user_id", userID).
			Msg("failed to decode stored keypair")
		return nil, err
	}
	return record, nil
}

func (s *memoryKeypairStore) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	s.cache.Delete(KeypairKey(userID))
	return nil
}

// Close stops the background eviction loop.
func (s *memoryKeypairStore) Close() error {
	s.cache.Stop()
	return nil
}
