// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

// ExecutionStatus is the outcome the ledger reports for an executed transaction.
type ExecutionStatus string

const (
	StatusSuccess ExecutionStatus = "success"
	StatusFailure ExecutionStatus = "failure"
)

// GasCostSummary is the fee breakdown in the smallest currency unit.
type GasCostSummary struct {
	ComputationCost uint64
	StorageCost     uint64
	StorageRebate   uint64
}

// Net is computation + storage - rebate, floored at zero.
func (g GasCostSummary) Net() uint64 {
	gross := g.ComputationCost + g.StorageCost
	if g.StorageRebate >= gross {
		return 0
	}
	return gross - g.StorageRebate
}

// TransactionEffects is what the ledger returns after executing a transaction.
type TransactionEffects struct {
	Digest  string
	Status  ExecutionStatus
	Error   string
	GasUsed GasCostSummary
}

func (e TransactionEffects) Succeeded() bool {
	return e.Status == StatusSuccess
}
