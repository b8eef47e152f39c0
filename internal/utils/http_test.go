// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"address": "0xab"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"address":"0xab"}`, w.Body.String())
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Sender string `json:"sender"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid", `{"sender":"0x01"}`, false},
		{"valid with trailing whitespace", "{\"sender\":\"0x01\"}\n", false},
		{"unknown field", `{"sender":"0x01","gas_owner":"0x02"}`, true},
		{"two values", `{"sender":"0x01"}{"sender":"0x02"}`, true},
		{"not json", `sender=0x01`, true},
		{"empty", ``, true},
		{"too large", `{"sender":"` + strings.Repeat("a", MaxRequestBodySize) + `"}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var got body

			err := DecodeJSON(httptest.NewRecorder(), r, &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0x01", got.Sender)
		})
	}
}
