// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestAddressFromPublicKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	addr, err := AddressFromPublicKey(pub)
	require.NoError(t, err)

	want := blake2b.Sum256(append([]byte{0x00}, pub...))
	assert.Equal(t, Address(want), addr)

	s := addr.String()
	assert.True(t, strings.HasPrefix(s, "0x"))
	assert.Len(t, s, 66)
	assert.Equal(t, strings.ToLower(s), s)

	again, err := AddressFromPublicKey(pub)
	require.NoError(t, err)
	assert.Equal(t, addr, again)
}

func TestAddressFromPublicKey_BadLength(t *testing.T) {
	_, err := AddressFromPublicKey(make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestParseAddress(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 32)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"lowercase", valid, false},
		{"uppercase digits", "0x" + strings.Repeat("AB", 32), false},
		{"upper prefix", "0X" + strings.Repeat("ab", 32), false},
		{"no prefix", strings.Repeat("ab", 32), true},
		{"short", "0x" + strings.Repeat("ab", 31), true},
		{"long", valid + "00", true},
		{"non hex", "0x" + strings.Repeat("zz", 32), true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				assert.Error(t, ValidateAddress(tt.in))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower("0x"+tt.in[2:]), addr.String())
		})
	}
}

func TestAddress_JSON(t *testing.T) {
	var addr Address
	addr[31] = 0x01

	data, err := json.Marshal(struct {
		A Address `json:"a"`
	}{addr})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"0x`+strings.Repeat("00", 31)+`01"}`, string(data))

	var out struct {
		A Address `json:"a"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, addr, out.A)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"0x12"}`), &out))
}
