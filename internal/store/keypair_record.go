// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fee-sponsor/models"
)

const keypairKeyPrefix = "keypair:"

// KeypairKey is the storage key of a user's keypair record.
func KeypairKey(userID string) string {
	return keypairKeyPrefix + userID
}

func encodeKeypair(record models.CustodialKeypair) (string, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode keypair record: %w", err)
	}
	return string(b), nil
}

func decodeKeypair(value string) (*models.CustodialKeypair, error) {
	var record models.CustodialKeypair
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}
	return &record, nil
}

func checkPut(userID string, ttl int64) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	return nil
}
