// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CustodialKeypair is the persisted record of a user's custodial key.
//
// EncryptedPrivateKey is an envelope ciphertext (base64) of the canonical
// private key export. The plaintext key is never stored or serialized.
// Timestamps are Unix milliseconds.
type CustodialKeypair struct {
	UserID              string `json:"userId"`
	PublicKey           []byte `json:"publicKey"`
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
	CreatedAt           int64  `json:"createdAt"`
	LastUsedAt          int64  `json:"lastUsedAt"`
}

// KeypairView is the public projection of a keypair returned by the API.
type KeypairView struct {
	UserID     string    `json:"user_id"`
	Address    string    `json:"address"`
	PublicKey  []byte    `json:"public_key"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}
