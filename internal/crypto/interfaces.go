// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// EnvelopeCipher seals custodial private keys at rest.
//
// Ciphertexts are base64 (standard encoding) of nonce(12) ‖ ciphertext ‖ tag(16).
// Every Decrypt failure is reported as ErrDecryptionFailed with no further
// detail, so callers cannot tell a wrong key from a corrupted blob.
type EnvelopeCipher interface {
	// Encrypt seals plaintext under a fresh random nonce. Encrypting the same
	// plaintext twice yields different ciphertexts.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt. The caller owns the
	// returned slice and should Wipe it once done.
	Decrypt(ciphertext string) ([]byte, error)
}
