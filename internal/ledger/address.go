// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger holds the ledger primitives shared by custody and
// sponsorship: account addresses, Ed25519 keys, intent signatures and the
// canonical transaction encoding.
package ledger

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// AddressLength is the byte length of an account address.
const AddressLength = 32

// Address is a 32-byte account identifier, rendered as 0x-prefixed lowercase hex.
type Address [AddressLength]byte

// AddressFromPublicKey derives the account address of an Ed25519 public key:
// Blake2b-256(scheme flag ‖ public key).
func AddressFromPublicKey(pub ed25519.PublicKey) (Address, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Address{}, fmt.Errorf("%w: length %d", ErrInvalidPublicKey, len(pub))
	}

	h, _ := blake2b.New256(nil)
	h.Write([]byte{byte(SchemeEd25519)})
	h.Write(pub)

	var addr Address
	copy(addr[:], h.Sum(nil))
	return addr, nil
}

// ParseAddress parses "0x" followed by exactly 64 hex digits, either case.
func ParseAddress(s string) (Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return Address{}, fmt.Errorf("%w: missing 0x prefix", ErrInvalidAddress)
	}
	body := s[2:]
	if len(body) != AddressLength*2 {
		return Address{}, fmt.Errorf("%w: want %d hex digits, got %d", ErrInvalidAddress, AddressLength*2, len(body))
	}

	var addr Address
	if _, err := hex.Decode(addr[:], []byte(body)); err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return addr, nil
}

// ValidateAddress reports whether s is a well-formed address.
func ValidateAddress(s string) error {
	_, err := ParseAddress(s)
	return err
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
