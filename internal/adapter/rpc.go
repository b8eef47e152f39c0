// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
)

const (
	methodExecuteTransaction = "sui_executeTransactionBlock"
	methodGetBalance         = "suix_getBalance"
	methodReferenceGasPrice  = "suix_getReferenceGasPrice"

	nativeCoinType     = "0x2::sui::SUI"
	waitForLocalEffect = "WaitForLocalExecution"

	userAgent = "go-fee-sponsor"

	// Only read-only calls are retried. A submission that timed out may
	// still have reached the node, so retrying it is left to the caller.
	transportRetries   = 2
	transportRetryWait = 100 * time.Millisecond
)

type jsonRPCLedgerAdapter struct {
	reads  *utils.HTTPClient
	submit *utils.HTTPClient
	rpcURL string
	nextID atomic.Uint64

	logger *logger.Logger
}

// NewJSONRPCLedgerAdapter builds a [LedgerAdapter] for the node at
// cfg.LedgerRPCURL. Returns an error if the URL is empty or unparsable.
func NewJSONRPCLedgerAdapter(cfg config.Adapter, logger *logger.Logger) (LedgerAdapter, error) {
	rpcURL, err := normalizeRPCURL(cfg.LedgerRPCURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger rpc url: %w", err)
	}

	reads := utils.NewHTTPClient(
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithUserAgent(userAgent),
		utils.WithTransportRetries(transportRetries, transportRetryWait),
	)
	submit := utils.NewHTTPClient(
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithUserAgent(userAgent),
	)

	return &jsonRPCLedgerAdapter{reads: reads, submit: submit, rpcURL: rpcURL, logger: logger}, nil
}

func normalizeRPCURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// call performs one JSON-RPC round trip over client and decodes the result
// into out.
func (a *jsonRPCLedgerAdapter) call(ctx context.Context, client *utils.HTTPClient, method string, params []any, out any) error {
	id := a.nextID.Add(1)
	start := time.Now()

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}).
		Post(a.rpcURL)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, method, err)
	}

	a.logger.Debug().
		Str("func", "jsonRPCLedgerAdapter.call").
		Str("method", method).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Send()

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}
	if rpcResp.ID != id {
		return fmt.Errorf("%w: %s: response id %d, want %d", ErrMalformedResponse, method, rpcResp.ID, id)
	}
	if len(rpcResp.Result) == 0 || string(rpcResp.Result) == "null" {
		return fmt.Errorf("%w: %s: empty result", ErrMalformedResponse, method)
	}
	if err = json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, method, err)
	}

	return nil
}

// quantity decodes the node's decimal-string integers ("1000") as well as
// bare JSON numbers.
type quantity uint64

func (q *quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid quantity %s: %w", string(b), err)
	}
	*q = quantity(v)
	return nil
}

type executeResult struct {
	Digest  string `json:"digest"`
	Effects *struct {
		Status struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		} `json:"status"`
		GasUsed struct {
			ComputationCost quantity `json:"computationCost"`
			StorageCost     quantity `json:"storageCost"`
			StorageRebate   quantity `json:"storageRebate"`
		} `json:"gasUsed"`
		TransactionDigest string `json:"transactionDigest"`
	} `json:"effects"`
}

type executeOptions struct {
	ShowEffects bool `json:"showEffects"`
}

// ExecuteTransaction implements [LedgerAdapter].
func (a *jsonRPCLedgerAdapter) ExecuteTransaction(ctx context.Context, txBytes []byte, signatures []string) (ledger.TransactionEffects, error) {
	params := []any{
		base64.StdEncoding.EncodeToString(txBytes),
		signatures,
		executeOptions{ShowEffects: true},
		waitForLocalEffect,
	}

	var res executeResult
	if err := a.call(ctx, a.submit, methodExecuteTransaction, params, &res); err != nil {
		return ledger.TransactionEffects{}, err
	}
	if res.Effects == nil {
		return ledger.TransactionEffects{}, fmt.Errorf("%w: %s: no effects", ErrMalformedResponse, methodExecuteTransaction)
	}

	digest := res.Digest
	if digest == "" {
		digest = res.Effects.TransactionDigest
	}

	status := ledger.StatusFailure
	if res.Effects.Status.Status == string(ledger.StatusSuccess) {
		status = ledger.StatusSuccess
	}

	return ledger.TransactionEffects{
		Digest: digest,
		Status: status,
		Error:  res.Effects.Status.Error,
		GasUsed: ledger.GasCostSummary{
			ComputationCost: uint64(res.Effects.GasUsed.ComputationCost),
			StorageCost:     uint64(res.Effects.GasUsed.StorageCost),
			StorageRebate:   uint64(res.Effects.GasUsed.StorageRebate),
		},
	}, nil
}

// GetBalance implements [LedgerAdapter].
func (a *jsonRPCLedgerAdapter) GetBalance(ctx context.Context, owner ledger.Address) (uint64, error) {
	var res struct {
		TotalBalance quantity `json:"totalBalance"`
	}
	if err := a.call(ctx, a.reads, methodGetBalance, []any{owner.String(), nativeCoinType}, &res); err != nil {
		return 0, err
	}
	return uint64(res.TotalBalance), nil
}

// GetReferenceGasPrice implements [LedgerAdapter].
func (a *jsonRPCLedgerAdapter) GetReferenceGasPrice(ctx context.Context) (uint64, error) {
	var price quantity
	if err := a.call(ctx, a.reads, methodReferenceGasPrice, []any{}, &price); err != nil {
		return 0, err
	}
	return uint64(price), nil
}
