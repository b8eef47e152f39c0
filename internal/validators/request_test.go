// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fee-sponsor/models"
	"github.com/stretchr/testify/assert"
)

func validSponsorshipRequest() models.SponsorshipRequest {
	return models.SponsorshipRequest{
		TransactionBytes: []byte{1},
		UserAddress:      validAddress,
		UserSignature:    "c2ln",
		OperationType:    "mint",
	}
}

func TestRequestValidator_SponsorshipRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.SponsorshipRequest)
		fields  []string
		wantErr error
	}{
		{"valid", func(*models.SponsorshipRequest) {}, nil, nil},
		{"no op", func(r *models.SponsorshipRequest) { r.OperationType = "" }, nil, ErrEmptyOperationType},
		{"bad address", func(r *models.SponsorshipRequest) { r.UserAddress = "0x1" }, nil, ErrInvalidUserAddress},
		{"no bytes", func(r *models.SponsorshipRequest) { r.TransactionBytes = nil }, nil, ErrEmptyTransactionData},
		{"no signature", func(r *models.SponsorshipRequest) { r.UserSignature = "" }, nil, ErrEmptyUserSignature},
		{"scoped skips signature", func(r *models.SponsorshipRequest) { r.UserSignature = "" }, []string{FieldUserAddress}, nil},
		{"unknown field", func(*models.SponsorshipRequest) {}, []string{"nope"}, ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSponsorshipRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, &req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr != ErrUnknownField {
				assert.ErrorIs(t, err, ErrValidationFailed)
			}
		})
	}
}

func TestRequestValidator_PrepareRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	ok := models.PrepareRequest{Sender: validAddress, Kind: []byte{1}, OperationType: "mint"}
	assert.NoError(t, v.Validate(ctx, ok))

	bad := ok
	bad.Kind = nil
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrEmptyTransactionKind)

	bad = ok
	bad.Sender = ""
	assert.ErrorIs(t, v.Validate(ctx, &bad), ErrInvalidUserAddress)
}

func TestRequestValidator_ExecuteRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ExecuteRequest{Kind: []byte{1}, OperationType: "mint"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.ExecuteRequest{Kind: []byte{1}}), ErrEmptyOperationType)
	assert.ErrorIs(t, v.Validate(ctx, models.ExecuteRequest{OperationType: "mint"}), ErrEmptyTransactionKind)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewRequestValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
