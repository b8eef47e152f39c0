// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the envelope cipher that protects custodial
// private keys before they reach the key store.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// envelopeSalt is fixed: the derived key must be identical across restarts
// for records written by earlier processes to stay readable.
const envelopeSalt = "go-fee-sponsor/custody/envelope/v1"

const (
	nonceSize = 12
	tagSize   = 16
)

// KDFParams are the Argon2id tuning parameters used to stretch the master
// secret into the 256-bit envelope key.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultKDFParams follows the OWASP Argon2id recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultKDFParams = KDFParams{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// envelopeCipher holds the AEAD built once from the derived key.
// cipher.AEAD from crypto/aes is safe for concurrent use.
type envelopeCipher struct {
	aead cipher.AEAD
	rand io.Reader
}

// NewEnvelopeCipher derives the envelope key from masterSecret with
// DefaultKDFParams.
func NewEnvelopeCipher(masterSecret string) (EnvelopeCipher, error) {
	return NewEnvelopeCipherWithParams(masterSecret, DefaultKDFParams)
}

// NewEnvelopeCipherWithParams is NewEnvelopeCipher with explicit Argon2id
// parameters. The key is derived exactly once, here.
func NewEnvelopeCipherWithParams(masterSecret string, params KDFParams) (EnvelopeCipher, error) {
	if masterSecret == "" {
		return nil, ErrEmptyMasterSecret
	}

	key := argon2.IDKey([]byte(masterSecret), []byte(envelopeSalt), params.Time, params.Memory, params.Threads, 32)
	defer Wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &envelopeCipher{aead: aead, rand: rand.Reader}, nil
}

// Encrypt implements [EnvelopeCipher].
func (e *envelopeCipher) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, nonceSize, nonceSize+len(plaintext)+tagSize)
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryptionFailed, err)
	}

	// Seal appends ciphertext ‖ tag after the nonce.
	blob := e.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [EnvelopeCipher].
func (e *envelopeCipher) Decrypt(ciphertext string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if len(blob) < nonceSize+tagSize {
		return nil, ErrDecryptionFailed
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
