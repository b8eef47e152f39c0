// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// SignatureScheme is the one-byte flag prefixed to exported keys, serialized
// signatures and address preimages.
type SignatureScheme byte

const SchemeEd25519 SignatureScheme = 0x00

// ExportedKeyLength is the length of the canonical private key export: flag ‖ seed.
const ExportedKeyLength = 1 + ed25519.SeedSize

// KeyPair is an Ed25519 account key.
type KeyPair struct {
	priv ed25519.PrivateKey
}

// GenerateKeyPair draws a new key from r (crypto/rand.Reader in production).
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return &KeyPair{priv: priv}, nil
}

// KeyPairFromSeed rebuilds a key from its 32-byte seed.
func KeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed length %d", ErrInvalidPrivateKey, len(seed))
	}
	return &KeyPair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// ParsePrivateKey accepts a base64 or hex string holding either the bare
// 32-byte seed or the 33-byte flag ‖ seed export. It is used to load the
// sponsor key from configuration.
func ParsePrivateKey(s string) (*KeyPair, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPrivateKey)
	}

	raw, err := decodeKeyString(s)
	if err != nil {
		return nil, err
	}
	defer wipe(raw)

	switch len(raw) {
	case ed25519.SeedSize:
		return KeyPairFromSeed(raw)
	case ExportedKeyLength:
		seed, err := SeedFromExport(raw)
		if err != nil {
			return nil, err
		}
		return KeyPairFromSeed(seed)
	default:
		return nil, fmt.Errorf("%w: decoded length %d", ErrInvalidPrivateKey, len(raw))
	}
}

func decodeKeyString(s string) ([]byte, error) {
	hexBody := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(hexBody) == ed25519.SeedSize*2 || len(hexBody) == ExportedKeyLength*2 {
		if raw, err := hex.DecodeString(hexBody); err == nil {
			return raw, nil
		}
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: neither hex nor base64", ErrInvalidPrivateKey)
	}
	return raw, nil
}

// SeedFromExport returns the seed view inside a flag ‖ seed export. The
// returned slice aliases exported, so wiping exported wipes the seed.
func SeedFromExport(exported []byte) ([]byte, error) {
	if len(exported) != ExportedKeyLength {
		return nil, fmt.Errorf("%w: export length %d", ErrInvalidPrivateKey, len(exported))
	}
	if SignatureScheme(exported[0]) != SchemeEd25519 {
		return nil, fmt.Errorf("%w: flag 0x%02x", ErrUnsupportedScheme, exported[0])
	}
	return exported[1:], nil
}

// PublicKey returns a copy of the public half.
func (k *KeyPair) PublicKey() ed25519.PublicKey {
	pub := make([]byte, ed25519.PublicKeySize)
	copy(pub, k.priv.Public().(ed25519.PublicKey))
	return pub
}

func (k *KeyPair) Address() Address {
	addr, _ := AddressFromPublicKey(k.priv.Public().(ed25519.PublicKey))
	return addr
}

// Export returns the canonical flag ‖ seed form. The caller must wipe it.
func (k *KeyPair) Export() []byte {
	out := make([]byte, 0, ExportedKeyLength)
	out = append(out, byte(SchemeEd25519))
	return append(out, k.priv[:ed25519.SeedSize]...)
}

// SignTransaction signs txBytes under the transaction intent and returns the
// serialized signature.
func (k *KeyPair) SignTransaction(txBytes []byte) string {
	return serializeSignature(ed25519.Sign(k.priv, transactionIntentDigest(txBytes)), k.priv.Public().(ed25519.PublicKey))
}

// Wipe zeroes the private key. The KeyPair is unusable afterwards.
func (k *KeyPair) Wipe() {
	wipe(k.priv)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
