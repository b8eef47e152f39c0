// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	txDataVersion byte = 1

	// MaxKindLength bounds the programmable transaction payload.
	MaxKindLength = 128 * 1024

	digestDomain = "TransactionData::"
)

// TransactionData is the unsigned transaction both parties sign.
// Kind is the opaque programmable-transaction payload built by the caller.
type TransactionData struct {
	Kind       []byte
	Sender     Address
	GasOwner   Address
	GasBudget  uint64
	GasPrice   uint64
	Expiration uint64 // epoch, 0 means none
}

// Encode renders d canonically: identical values always give identical bytes.
//
//	version(1) ‖ uvarint(len(kind)) ‖ kind ‖ sender(32) ‖ gasOwner(32) ‖
//	gasBudget(u64 LE) ‖ gasPrice(u64 LE) ‖ expiration(u64 LE)
func (d TransactionData) Encode() []byte {
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(d.Kind)+2*AddressLength+24)
	buf = append(buf, txDataVersion)
	buf = binary.AppendUvarint(buf, uint64(len(d.Kind)))
	buf = append(buf, d.Kind...)
	buf = append(buf, d.Sender[:]...)
	buf = append(buf, d.GasOwner[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, d.GasBudget)
	buf = binary.LittleEndian.AppendUint64(buf, d.GasPrice)
	buf = binary.LittleEndian.AppendUint64(buf, d.Expiration)
	return buf
}

// DecodeTransactionData is the strict inverse of Encode. Trailing bytes,
// truncation and non-minimal length prefixes are rejected.
func DecodeTransactionData(b []byte) (TransactionData, error) {
	if len(b) == 0 {
		return TransactionData{}, fmt.Errorf("%w: empty", ErrMalformedTxData)
	}
	if b[0] != txDataVersion {
		return TransactionData{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, b[0])
	}
	rest := b[1:]

	kindLen, n := binary.Uvarint(rest)
	if n <= 0 {
		return TransactionData{}, fmt.Errorf("%w: kind length", ErrMalformedTxData)
	}
	if n != len(binary.AppendUvarint(nil, kindLen)) {
		return TransactionData{}, fmt.Errorf("%w: non-canonical kind length", ErrMalformedTxData)
	}
	rest = rest[n:]
	if kindLen > MaxKindLength || kindLen > uint64(len(rest)) {
		return TransactionData{}, fmt.Errorf("%w: kind length %d", ErrMalformedTxData, kindLen)
	}

	var d TransactionData
	d.Kind = bytes.Clone(rest[:kindLen])
	rest = rest[kindLen:]

	const fixedTail = 2*AddressLength + 24
	if len(rest) != fixedTail {
		return TransactionData{}, fmt.Errorf("%w: want %d trailing bytes, got %d", ErrMalformedTxData, fixedTail, len(rest))
	}
	copy(d.Sender[:], rest[:AddressLength])
	copy(d.GasOwner[:], rest[AddressLength:2*AddressLength])
	rest = rest[2*AddressLength:]
	d.GasBudget = binary.LittleEndian.Uint64(rest[0:8])
	d.GasPrice = binary.LittleEndian.Uint64(rest[8:16])
	d.Expiration = binary.LittleEndian.Uint64(rest[16:24])
	return d, nil
}

// TransactionDigest is base58(Blake2b-256("TransactionData::" ‖ txBytes)).
func TransactionDigest(txBytes []byte) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(digestDomain))
	h.Write(txBytes)
	return base58.Encode(h.Sum(nil))
}

// SponsoredTransaction is a transaction whose gas owner has been fixed to the
// sponsor. It can only be built by NewSponsoredTransaction, so holding one
// proves the bytes a user signs are the bytes the sponsor will co-sign.
type SponsoredTransaction struct {
	data  TransactionData
	bytes []byte
}

// NewSponsoredTransaction copies data, sets its gas owner to sponsor and
// encodes it.
func NewSponsoredTransaction(data TransactionData, sponsor Address) (SponsoredTransaction, error) {
	if len(data.Kind) == 0 {
		return SponsoredTransaction{}, fmt.Errorf("%w: empty transaction kind", ErrMalformedTxData)
	}
	if len(data.Kind) > MaxKindLength {
		return SponsoredTransaction{}, fmt.Errorf("%w: kind length %d", ErrMalformedTxData, len(data.Kind))
	}
	if data.Sender.IsZero() {
		return SponsoredTransaction{}, fmt.Errorf("%w: zero sender", ErrMalformedTxData)
	}
	if sponsor.IsZero() {
		return SponsoredTransaction{}, fmt.Errorf("%w: zero sponsor", ErrMalformedTxData)
	}

	data.Kind = bytes.Clone(data.Kind)
	data.GasOwner = sponsor
	return SponsoredTransaction{data: data, bytes: data.Encode()}, nil
}

// IsZero reports whether t was not built by NewSponsoredTransaction.
func (t SponsoredTransaction) IsZero() bool {
	return len(t.bytes) == 0
}

// Data returns a copy of the underlying transaction data.
func (t SponsoredTransaction) Data() TransactionData {
	d := t.data
	d.Kind = bytes.Clone(t.data.Kind)
	return d
}

// Bytes returns a copy of the encoded transaction.
func (t SponsoredTransaction) Bytes() []byte {
	return bytes.Clone(t.bytes)
}

func (t SponsoredTransaction) Base64() string {
	return base64.StdEncoding.EncodeToString(t.bytes)
}

func (t SponsoredTransaction) Digest() string {
	return TransactionDigest(t.bytes)
}

func (t SponsoredTransaction) Sender() Address {
	return t.data.Sender
}

func (t SponsoredTransaction) Sponsor() Address {
	return t.data.GasOwner
}
