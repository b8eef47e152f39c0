// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-fee-sponsor/internal/app"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer    ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "only a space", header: " ", wantErr: ErrEmptyAuthorizationHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var ctxTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxTraceID = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "caller-trace")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "caller-trace", rr.Header().Get(traceIDHeader))
	assert.Equal(t, "caller-trace", ctxTraceID)

	rr = httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	generated, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), generated.Version())
	assert.Equal(t, rr.Header().Get(traceIDHeader), ctxTraceID)
}

func TestWithTraceID_ReplacesMalformedCallerID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	for _, bad := range []string{"a b", "x\"\n", strings.Repeat("a", maxTraceIDLength+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, bad)
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, req)

		got := rr.Header().Get(traceIDHeader)
		assert.NotEqual(t, bad, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestResponseWriter_RecordsFirstStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 5, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _ = w.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, w.status)
}

func TestWithLogging_PassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestResponseFromError_Default(t *testing.T) {
	resp := responseFromError(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.Equal(t, app.MsgInternalServerError, resp.message)
}
