// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// SerializedSignatureLength is flag(1) ‖ signature(64) ‖ public key(32).
const SerializedSignatureLength = 1 + ed25519.SignatureSize + ed25519.PublicKeySize

// transactionIntent is scope=TransactionData, version=V0, app=Ledger.
var transactionIntent = [3]byte{0, 0, 0}

func transactionIntentDigest(txBytes []byte) []byte {
	h, _ := blake2b.New256(nil)
	h.Write(transactionIntent[:])
	h.Write(txBytes)
	return h.Sum(nil)
}

func serializeSignature(sig []byte, pub ed25519.PublicKey) string {
	buf := make([]byte, 0, SerializedSignatureLength)
	buf = append(buf, byte(SchemeEd25519))
	buf = append(buf, sig...)
	buf = append(buf, pub...)
	return base64.StdEncoding.EncodeToString(buf)
}

// SignTransactionWithSeed expands seed into a private key, signs txBytes
// under the transaction intent and zeroes the expanded key before returning.
func SignTransactionWithSeed(seed, txBytes []byte) (string, error) {
	if len(seed) != ed25519.SeedSize {
		return "", fmt.Errorf("%w: seed length %d", ErrInvalidPrivateKey, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	defer wipe(priv)

	return serializeSignature(ed25519.Sign(priv, transactionIntentDigest(txBytes)), priv.Public().(ed25519.PublicKey)), nil
}

// SignMessageWithSeed signs message as-is (no intent wrapping), so the result
// verifies with ed25519.Verify against the public key.
func SignMessageWithSeed(seed, message []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed length %d", ErrInvalidPrivateKey, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	defer wipe(priv)

	return ed25519.Sign(priv, message), nil
}

// PublicKeyFromSeed returns the public key matching seed.
func PublicKeyFromSeed(seed []byte) (ed25519.PublicKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed length %d", ErrInvalidPrivateKey, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	defer wipe(priv)

	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	return pub, nil
}

// VerifyTransactionSignature checks a serialized signature over txBytes and
// returns the address of the signer.
func VerifyTransactionSignature(txBytes []byte, serialized string) (Address, error) {
	raw, err := base64.StdEncoding.DecodeString(serialized)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if len(raw) != SerializedSignatureLength {
		return Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(raw))
	}
	if SignatureScheme(raw[0]) != SchemeEd25519 {
		return Address{}, fmt.Errorf("%w: flag 0x%02x", ErrUnsupportedScheme, raw[0])
	}

	sig := raw[1 : 1+ed25519.SignatureSize]
	pub := ed25519.PublicKey(bytes.Clone(raw[1+ed25519.SignatureSize:]))
	if !ed25519.Verify(pub, transactionIntentDigest(txBytes), sig) {
		return Address{}, ErrInvalidSignature
	}
	return AddressFromPublicKey(pub)
}
