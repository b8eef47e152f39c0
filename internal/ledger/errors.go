// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import "errors"

var (
	ErrInvalidAddress     = errors.New("invalid ledger address")
	ErrInvalidPublicKey   = errors.New("invalid public key")
	ErrInvalidPrivateKey  = errors.New("invalid private key")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrUnsupportedScheme  = errors.New("unsupported signature scheme")
	ErrMalformedTxData    = errors.New("malformed transaction data")
	ErrUnsupportedVersion = errors.New("unsupported transaction data version")
)
