// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var validAddress = "0x" + strings.Repeat("ab", 32)

func testPolicy() *SponsorshipPolicy {
	return NewSponsorshipPolicy([]string{"mint", "transfer"}, 100, 50)
}

func validInput() PolicyInput {
	return PolicyInput{
		OperationType:    "mint",
		UserAddress:      validAddress,
		TransactionBytes: []byte{1, 2, 3},
		DailyUsed:        0,
	}
}

func TestSponsorshipPolicy_Evaluate(t *testing.T) {
	p := testPolicy()

	tests := []struct {
		name    string
		mutate  func(*PolicyInput)
		wantErr error
	}{
		{"allowed", func(*PolicyInput) {}, nil},
		{"just under the limit", func(in *PolicyInput) { in.DailyUsed = 99 }, nil},
		{"disallowed op", func(in *PolicyInput) { in.OperationType = "burn" }, ErrDisallowedOperationType},
		{"empty op", func(in *PolicyInput) { in.OperationType = "" }, ErrDisallowedOperationType},
		{"empty address", func(in *PolicyInput) { in.UserAddress = "" }, ErrValidationFailed},
		{"short address", func(in *PolicyInput) { in.UserAddress = "0xabc" }, ErrValidationFailed},
		{"no prefix", func(in *PolicyInput) { in.UserAddress = strings.Repeat("ab", 32) }, ErrValidationFailed},
		{"empty tx bytes", func(in *PolicyInput) { in.TransactionBytes = nil }, ErrValidationFailed},
		{"limit reached", func(in *PolicyInput) { in.DailyUsed = 100 }, ErrGasLimitExceeded},
		{"limit passed", func(in *PolicyInput) { in.DailyUsed = 1000 }, ErrGasLimitExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := p.Evaluate(in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSponsorshipPolicy_FirstFailingCheckWins(t *testing.T) {
	p := testPolicy()

	// everything is wrong: the op type is reported
	err := p.Evaluate(PolicyInput{OperationType: "burn", DailyUsed: 100})
	assert.ErrorIs(t, err, ErrDisallowedOperationType)
	assert.NotErrorIs(t, err, ErrGasLimitExceeded)

	// op is fine, address and budget are not: the address is reported
	err = p.Evaluate(PolicyInput{OperationType: "mint", TransactionBytes: []byte{1}, DailyUsed: 100})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrGasLimitExceeded)

	// only bytes and budget are wrong
	err = p.Evaluate(PolicyInput{OperationType: "mint", UserAddress: validAddress, DailyUsed: 100})
	assert.ErrorIs(t, err, ErrEmptyTransactionData)
}

func TestSponsorshipPolicy_Accessors(t *testing.T) {
	p := testPolicy()
	assert.Equal(t, uint64(100), p.DailyGasLimit())
	assert.Equal(t, uint64(50), p.MaxGasPerTransaction())
	assert.True(t, p.Allows("transfer"))
	assert.False(t, p.Allows("burn"))
}

func TestSponsorshipPolicy_Validate(t *testing.T) {
	p := testPolicy()
	ctx := context.Background()

	in := validInput()
	assert.NoError(t, p.Validate(ctx, in))
	assert.NoError(t, p.Validate(ctx, &in))
	assert.ErrorIs(t, p.Validate(ctx, "nope"), ErrUnsupportedType)
	assert.ErrorIs(t, p.Validate(ctx, in, FieldKind), ErrUnknownField)
}
