// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request and response bodies of the HTTP API. []byte fields travel as
// standard base64 strings.

type PrepareTransactionRequest struct {
	Sender        string        `json:"sender"`
	Kind          []byte        `json:"kind"`
	OperationType OperationType `json:"operation_type"`
}

type PrepareTransactionResponse struct {
	TransactionBytes []byte `json:"transaction_bytes"`
	Digest           string `json:"digest"`
	Sponsor          string `json:"sponsor"`
	GasBudget        uint64 `json:"gas_budget"`
	GasPrice         uint64 `json:"gas_price"`
}

type SubmitTransactionRequest struct {
	TransactionBytes []byte        `json:"transaction_bytes"`
	UserAddress      string        `json:"user_address"`
	UserSignature    string        `json:"user_signature"`
	OperationType    OperationType `json:"operation_type"`
}

type ExecuteTransactionRequest struct {
	Kind          []byte        `json:"kind"`
	OperationType OperationType `json:"operation_type"`
}

type AddressResponse struct {
	Address string `json:"address"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ServiceInfo is the public description of the sponsor served at
// GET /api/info, so clients can check a transaction against the policy
// before building it.
type ServiceInfo struct {
	Version               string   `json:"version"`
	AllowedOperationTypes []string `json:"allowed_operation_types"`
	MaxGasPerTransaction  uint64   `json:"max_gas_per_transaction"`
	DailyGasLimit         uint64   `json:"daily_gas_limit"`
}
