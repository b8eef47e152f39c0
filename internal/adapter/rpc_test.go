// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-fee-sponsor/internal/config"
	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcHandler decodes the request, hands it to fn and wraps fn's result in a
// JSON-RPC envelope with the matching id.
func rpcHandler(t *testing.T, fn func(req rpcRequest) (result string, rpcErr string)) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req rpcRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)

		result, rpcErr := fn(req)
		w.Header().Set("Content-Type", "application/json")
		if rpcErr != "" {
			_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":%s}`, req.ID, rpcErr)
			return
		}
		_, _ = fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, result)
	}
}

func newTestAdapter(t *testing.T, handler http.Handler) *jsonRPCLedgerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewJSONRPCLedgerAdapter(config.Adapter{LedgerRPCURL: srv.URL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*jsonRPCLedgerAdapter)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewJSONRPCLedgerAdapter_URL(t *testing.T) {
	_, err := NewJSONRPCLedgerAdapter(config.Adapter{}, logger.Nop())
	assert.Error(t, err)

	a, err := NewJSONRPCLedgerAdapter(config.Adapter{LedgerRPCURL: "localhost:9000"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", a.(*jsonRPCLedgerAdapter).rpcURL)
}

// ── ExecuteTransaction ───────────────────────────────────────────────────────

func TestExecuteTransaction_Success(t *testing.T) {
	txBytes := []byte{1, 2, 3}
	sigs := []string{"user-sig", "sponsor-sig"}

	a := newTestAdapter(t, rpcHandler(t, func(req rpcRequest) (string, string) {
		assert.Equal(t, methodExecuteTransaction, req.Method)
		if !assert.Len(t, req.Params, 4) {
			return "null", ""
		}
		assert.Equal(t, base64.StdEncoding.EncodeToString(txBytes), req.Params[0])
		assert.Equal(t, []any{"user-sig", "sponsor-sig"}, req.Params[1])
		assert.Equal(t, map[string]any{"showEffects": true}, req.Params[2])
		assert.Equal(t, waitForLocalEffect, req.Params[3])

		return `{"digest":"D1g3st","effects":{"status":{"status":"success"},
			"gasUsed":{"computationCost":"1000","storageCost":"2000","storageRebate":"500"}}}`, ""
	}))

	effects, err := a.ExecuteTransaction(context.Background(), txBytes, sigs)
	require.NoError(t, err)

	assert.Equal(t, "D1g3st", effects.Digest)
	assert.True(t, effects.Succeeded())
	assert.Equal(t, uint64(2500), effects.GasUsed.Net())
}

func TestExecuteTransaction_AbortedOnChain(t *testing.T) {
	a := newTestAdapter(t, rpcHandler(t, func(rpcRequest) (string, string) {
		return `{"effects":{"transactionDigest":"Abc","status":{"status":"failure","error":"InsufficientGas"},
			"gasUsed":{"computationCost":10,"storageCost":0,"storageRebate":0}}}`, ""
	}))

	effects, err := a.ExecuteTransaction(context.Background(), []byte{1}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Abc", effects.Digest)
	assert.Equal(t, ledger.StatusFailure, effects.Status)
	assert.Equal(t, "InsufficientGas", effects.Error)
	assert.Equal(t, uint64(10), effects.GasUsed.Net())
}

func TestExecuteTransaction_RPCError(t *testing.T) {
	a := newTestAdapter(t, rpcHandler(t, func(rpcRequest) (string, string) {
		return "", `{"code":-32002,"message":"Transaction validator signing failed"}`
	}))

	_, err := a.ExecuteTransaction(context.Background(), []byte{1}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRPC)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32002, rpcErr.Code)
}

func TestExecuteTransaction_NoEffects(t *testing.T) {
	a := newTestAdapter(t, rpcHandler(t, func(rpcRequest) (string, string) {
		return `{"digest":"x"}`, ""
	}))

	_, err := a.ExecuteTransaction(context.Background(), []byte{1}, nil)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── GetBalance / GetReferenceGasPrice ────────────────────────────────────────

func TestGetBalance(t *testing.T) {
	var owner ledger.Address
	owner[0] = 0xaa

	a := newTestAdapter(t, rpcHandler(t, func(req rpcRequest) (string, string) {
		assert.Equal(t, methodGetBalance, req.Method)
		assert.Equal(t, []any{owner.String(), nativeCoinType}, req.Params)
		return `{"coinType":"0x2::sui::SUI","coinObjectCount":3,"totalBalance":"123456789012"}`, ""
	}))

	balance, err := a.GetBalance(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789012), balance)
}

func TestGetReferenceGasPrice(t *testing.T) {
	a := newTestAdapter(t, rpcHandler(t, func(req rpcRequest) (string, string) {
		assert.Equal(t, methodReferenceGasPrice, req.Method)
		assert.Empty(t, req.Params)
		return `"750"`, ""
	}))

	price, err := a.GetReferenceGasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(750), price)
}

// ── transport failures ───────────────────────────────────────────────────────

func TestCall_HTTPStatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnavailable},
		{http.StatusGatewayTimeout, ErrUnavailable},
		{http.StatusRequestTimeout, ErrUnavailable},
		{http.StatusRequestEntityTooLarge, ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("node says no"))
			}))

			_, err := a.GetReferenceGasPrice(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, strings.Contains(err.Error(), "node says no"))
		})
	}
}

func TestCall_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a, err := NewJSONRPCLedgerAdapter(config.Adapter{LedgerRPCURL: url, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = a.GetBalance(context.Background(), ledger.Address{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

// slowNode counts requests and answers none of them within timeout.
func slowNode(t *testing.T, timeout time.Duration) (*jsonRPCLedgerAdapter, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-time.After(3 * timeout):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	a, err := NewJSONRPCLedgerAdapter(config.Adapter{LedgerRPCURL: srv.URL, RequestTimeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return a.(*jsonRPCLedgerAdapter), &hits
}

func TestExecuteTransaction_TimeoutIsNotResubmitted(t *testing.T) {
	a, hits := slowNode(t, 100*time.Millisecond)

	_, err := a.ExecuteTransaction(context.Background(), []byte{1, 2, 3}, []string{"sig"})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), hits.Load())
}

func TestGetReferenceGasPrice_TimeoutIsRetried(t *testing.T) {
	a, hits := slowNode(t, 100*time.Millisecond)

	_, err := a.GetReferenceGasPrice(context.Background())

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1+transportRetries), hits.Load())
}

func TestCall_MismatchedID(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":999,"result":"1"}`))
	}))

	_, err := a.GetReferenceGasPrice(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCall_NotJSON(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))

	_, err := a.GetReferenceGasPrice(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCall_LongErrorBodyIsTruncated(t *testing.T) {
	page := "<html>" + strings.Repeat("é", 1000) + "</html>"
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(page))
	}))

	_, err := a.GetReferenceGasPrice(context.Background())
	require.ErrorIs(t, err, ErrBadGateway)
	assert.Less(t, len(err.Error()), maxErrorBody+100)
	assert.True(t, strings.HasSuffix(err.Error(), "..."))
	assert.True(t, utf8.ValidString(err.Error()))
}
