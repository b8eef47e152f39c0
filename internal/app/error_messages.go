// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the fixed response messages shared by the HTTP handlers
// and middleware. Underlying causes are logged, never echoed to callers.
package app

const (
	// MsgInvalidRequest covers malformed bodies and failed field validation.
	MsgInvalidRequest = "invalid request"

	MsgNotPermitted = "not permitted"

	// MsgTryAgainLater is returned for rate limiting, budget exhaustion and
	// transient unavailability of the node or the key store.
	MsgTryAgainLater = "try again later"

	MsgKeypairNotFound = "keypair not found"

	MsgSponsorshipRejected = "sponsorship rejected"

	MsgSigningFailed = "signing failed"

	MsgKeypairGenerationFailed = "keypair generation failed"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is
	// missing, expired or fails signature verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgNoUserIDProvided = "no user ID provided"

	MsgInternalServerError = "internal server error"
)
