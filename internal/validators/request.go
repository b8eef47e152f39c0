// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// Field names accepted by RequestValidator.Validate.
const (
	FieldUserAddress      = "user_address"
	FieldSender           = "sender"
	FieldTransactionBytes = "transaction_bytes"
	FieldKind             = "kind"
	FieldUserSignature    = "user_signature"
	FieldOperationType    = "operation_type"
)

// RequestValidator checks the shape of inbound sponsorship requests before
// they reach the service layer. It knows nothing about policy limits.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the request type. Supported types are
// models.SponsorshipRequest, models.PrepareRequest and models.ExecuteRequest,
// as values or pointers.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SponsorshipRequest:
		return v.validateSponsorshipRequest(value, fields...)
	case *models.SponsorshipRequest:
		return v.validateSponsorshipRequest(*value, fields...)
	case models.PrepareRequest:
		return v.validatePrepareRequest(value, fields...)
	case *models.PrepareRequest:
		return v.validatePrepareRequest(*value, fields...)
	case models.ExecuteRequest:
		return v.validateExecuteRequest(value, fields...)
	case *models.ExecuteRequest:
		return v.validateExecuteRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSponsorshipRequest(req models.SponsorshipRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperationType, FieldUserAddress, FieldTransactionBytes, FieldUserSignature}
	}

	for _, f := range fields {
		switch f {
		case FieldOperationType:
			if req.OperationType == "" {
				return ErrEmptyOperationType
			}
		case FieldUserAddress:
			if ledger.ValidateAddress(req.UserAddress) != nil {
				return ErrInvalidUserAddress
			}
		case FieldTransactionBytes:
			if len(req.TransactionBytes) == 0 {
				return ErrEmptyTransactionData
			}
		case FieldUserSignature:
			if req.UserSignature == "" {
				return ErrEmptyUserSignature
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validatePrepareRequest(req models.PrepareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperationType, FieldSender, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldOperationType:
			if req.OperationType == "" {
				return ErrEmptyOperationType
			}
		case FieldSender:
			if ledger.ValidateAddress(req.Sender) != nil {
				return ErrInvalidUserAddress
			}
		case FieldKind:
			if len(req.Kind) == 0 {
				return ErrEmptyTransactionKind
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateExecuteRequest(req models.ExecuteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperationType, FieldKind}
	}

	for _, f := range fields {
		switch f {
		case FieldOperationType:
			if req.OperationType == "" {
				return ErrEmptyOperationType
			}
		case FieldKind:
			if len(req.Kind) == 0 {
				return ErrEmptyTransactionKind
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
