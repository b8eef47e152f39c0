// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OperationType classifies what a sponsored transaction does. The sponsor only
// pays for types on its allow-list.
type OperationType string

// SponsorshipRequest asks the sponsor to co-sign and submit a transaction the
// user has already signed.
type SponsorshipRequest struct {
	// TransactionBytes are the sponsor-finalized transaction bytes the user signed.
	TransactionBytes []byte
	UserAddress      string
	// UserSignature is the serialized signature over TransactionBytes.
	UserSignature string
	OperationType OperationType
}

// PrepareRequest asks the sponsor to finalize gas data for a transaction kind.
type PrepareRequest struct {
	Sender        string
	Kind          []byte
	OperationType OperationType
}

// ExecuteRequest runs a transaction kind on behalf of a custodial user.
type ExecuteRequest struct {
	Kind          []byte
	OperationType OperationType
}

type ReceiptStatus string

const (
	ReceiptSuccess ReceiptStatus = "success"
	ReceiptFailed  ReceiptStatus = "failed"
)

// SponsorshipReceipt is the outcome of a submitted sponsorship. A receipt is
// only produced once the ledger executed the transaction; its fee was paid
// regardless of Status.
type SponsorshipReceipt struct {
	ID                        string        `json:"id"`
	TransactionDigest         string        `json:"transaction_digest"`
	SponsoredTransactionBytes []byte        `json:"sponsored_transaction_bytes"`
	FeeUsed                   uint64        `json:"fee_used"`
	Status                    ReceiptStatus `json:"status"`
	Error                     string        `json:"error,omitempty"`
	OverCap                   bool          `json:"over_cap,omitempty"`
	DailyUsed                 uint64        `json:"daily_used"`
}

// AccountingRecord is one row of the sponsorship log.
type AccountingRecord struct {
	ID                string
	TransactionDigest string
	UserAddress       string
	OperationType     OperationType
	FeeUsed           uint64
	Status            ReceiptStatus
	OverCap           bool
	CreatedAt         time.Time
}

// SponsorBalance is a point-in-time reading of the sponsor wallet.
type SponsorBalance struct {
	Address   string    `json:"address"`
	Balance   uint64    `json:"balance"`
	Threshold uint64    `json:"threshold"`
	Low       bool      `json:"low"`
	CheckedAt time.Time `json:"checked_at"`
}

// BudgetSnapshot is a consistent view of the daily sponsorship budget.
type BudgetSnapshot struct {
	DailyUsed     uint64 `json:"daily_used"`
	Pending       uint64 `json:"pending"`
	DailyGasLimit uint64 `json:"daily_gas_limit"`
	LastResetDate string `json:"last_reset_date"`
}
