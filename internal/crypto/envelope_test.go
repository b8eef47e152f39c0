// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKDF = KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1}

func newTestCipher(t *testing.T, secret string) EnvelopeCipher {
	t.Helper()
	c, err := NewEnvelopeCipherWithParams(secret, testKDF)
	require.NoError(t, err)
	return c
}

func TestNewEnvelopeCipher_EmptySecret(t *testing.T) {
	_, err := NewEnvelopeCipher("")
	assert.ErrorIs(t, err, ErrEmptyMasterSecret)
}

func TestEnvelope_RoundTrip(t *testing.T) {
	c := newTestCipher(t, "master-secret")
	plain := bytes.Repeat([]byte{0x42}, 33)

	ct, err := c.Encrypt(plain)
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)
	assert.Len(t, blob, nonceSize+len(plain)+tagSize)

	got, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestEnvelope_EmptyPlaintext(t *testing.T) {
	c := newTestCipher(t, "master-secret")

	ct, err := c.Encrypt(nil)
	require.NoError(t, err)

	got, err := c.Decrypt(ct)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnvelope_FreshNoncePerEncryption(t *testing.T) {
	c := newTestCipher(t, "master-secret")
	plain := []byte("same plaintext")

	ct1, err := c.Encrypt(plain)
	require.NoError(t, err)
	ct2, err := c.Encrypt(plain)
	require.NoError(t, err)

	assert.NotEqual(t, ct1, ct2)
}

func TestEnvelope_SameSecretAcrossInstances(t *testing.T) {
	writer := newTestCipher(t, "shared")
	reader := newTestCipher(t, "shared")

	ct, err := writer.Encrypt([]byte("persisted"))
	require.NoError(t, err)

	got, err := reader.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func TestEnvelope_DecryptFailuresAreOpaque(t *testing.T) {
	c := newTestCipher(t, "master-secret")
	ct, err := c.Encrypt([]byte("secret key material"))
	require.NoError(t, err)
	blob, _ := base64.StdEncoding.DecodeString(ct)

	flip := func(i int) string {
		b := bytes.Clone(blob)
		b[i] ^= 0x01
		return base64.StdEncoding.EncodeToString(b)
	}

	tests := []struct {
		name       string
		cipher     EnvelopeCipher
		ciphertext string
	}{
		{"tampered nonce", c, flip(0)},
		{"tampered body", c, flip(nonceSize + 1)},
		{"tampered tag", c, flip(len(blob) - 1)},
		{"truncated", c, base64.StdEncoding.EncodeToString(blob[:nonceSize+tagSize-1])},
		{"not base64", c, "%%%not-base64%%%"},
		{"empty", c, ""},
		{"wrong secret", newTestCipher(t, "other-secret"), ct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cipher.Decrypt(tt.ciphertext)
			assert.Nil(t, got)
			assert.Equal(t, ErrDecryptionFailed, err)
		})
	}
}

func TestEnvelope_AnyBitFlipIsDetected(t *testing.T) {
	c := newTestCipher(t, "master-secret")
	ct, err := c.Encrypt([]byte("secret key material"))
	require.NoError(t, err)
	blob, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)

	for i := range blob {
		for bit := range 8 {
			b := bytes.Clone(blob)
			b[i] ^= 1 << bit

			got, err := c.Decrypt(base64.StdEncoding.EncodeToString(b))
			if !assert.Equal(t, ErrDecryptionFailed, err, "byte %d bit %d", i, bit) {
				return
			}
			assert.Nil(t, got)
		}
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
