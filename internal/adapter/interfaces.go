// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the ledger full node over JSON-RPC.
//
// [LedgerAdapter] decouples the sponsorship service from the transport.
// Transport and RPC failures are mapped to the sentinel values in errors.go so
// callers can use [errors.Is] without knowing the protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_adapter_mock.go -package=mock

// LedgerAdapter is the sponsorship service's view of the ledger.
type LedgerAdapter interface {
	// ExecuteTransaction submits txBytes with the given serialized signatures
	// and waits for the effects. A transaction the ledger executed but
	// aborted is returned with Status failure and a nil error.
	ExecuteTransaction(ctx context.Context, txBytes []byte, signatures []string) (ledger.TransactionEffects, error)

	// GetBalance returns the total native-coin balance of owner.
	GetBalance(ctx context.Context, owner ledger.Address) (uint64, error)

	// GetReferenceGasPrice returns the gas price for the current epoch.
	GetReferenceGasPrice(ctx context.Context) (uint64, error)
}
