// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fee-sponsor/internal/app"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/service"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. Messages are
// fixed so that causes such as node errors or store details stay in the logs.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrDisallowedOperationType, errorResponse{http.StatusForbidden, app.MsgNotPermitted}},
	{service.ErrRateLimitExceeded, errorResponse{http.StatusTooManyRequests, app.MsgTryAgainLater}},
	{service.ErrGasLimitExceeded, errorResponse{http.StatusTooManyRequests, app.MsgTryAgainLater}},
	{service.ErrValidationFailed, errorResponse{http.StatusBadRequest, app.MsgInvalidRequest}},
	{service.ErrInvalidUserID, errorResponse{http.StatusBadRequest, app.MsgInvalidRequest}},
	{service.ErrKeypairNotFound, errorResponse{http.StatusNotFound, app.MsgKeypairNotFound}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrSponsorshipRejected, errorResponse{http.StatusBadGateway, app.MsgSponsorshipRejected}},
	{service.ErrLedgerUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgTryAgainLater}},
	{service.ErrKeyStoreUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgTryAgainLater}},
	{service.ErrSigningFailed, errorResponse{http.StatusInternalServerError, app.MsgSigningFailed}},
	{service.ErrKeypairGenerationFailed, errorResponse{http.StatusInternalServerError, app.MsgKeypairGenerationFailed}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err with its cause and answers with the mapped status and
// fixed message.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg("request failed")

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: resp.message}, resp.status)
}
