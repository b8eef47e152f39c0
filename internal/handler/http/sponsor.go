// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fee-sponsor/internal/app"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// prepareTransaction finalizes gas data for a caller-built transaction kind.
// The caller signs the returned bytes and sends them to submitTransaction.
func (h *Handler) prepareTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.PrepareTransactionRequest
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.prepareTransaction").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	tx, err := h.services.SponsorshipService.PrepareTransaction(r.Context(), models.PrepareRequest{
		Sender:        body.Sender,
		Kind:          body.Kind,
		OperationType: body.OperationType,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.prepareTransaction")
		return
	}

	data := tx.Data()
	_, _ = utils.WriteJSON(w, models.PrepareTransactionResponse{
		TransactionBytes: tx.Bytes(),
		Digest:           tx.Digest(),
		Sponsor:          tx.Sponsor().String(),
		GasBudget:        data.GasBudget,
		GasPrice:         data.GasPrice,
	}, http.StatusOK)
}

// submitTransaction sponsors a transaction the caller signed with its own
// wallet.
func (h *Handler) submitTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.SubmitTransactionRequest
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.submitTransaction").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.SponsorshipService.SponsorTransaction(r.Context(), models.SponsorshipRequest{
		TransactionBytes: body.TransactionBytes,
		UserAddress:      body.UserAddress,
		UserSignature:    body.UserSignature,
		OperationType:    body.OperationType,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.submitTransaction")
		return
	}

	_, _ = utils.WriteJSON(w, receipt, http.StatusOK)
}

// executeTransaction runs a transaction kind for the authenticated user
// with its custodial key.
func (h *Handler) executeTransaction(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Err(ErrNoUserIDInContext).Str("func", "*Handler.executeTransaction").Send()
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var body models.ExecuteTransactionRequest
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.executeTransaction").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.CustodialExecutionService.ExecuteForUser(r.Context(), userID, models.ExecuteRequest{
		Kind:          body.Kind,
		OperationType: body.OperationType,
	})
	if err != nil {
		writeError(w, r, err, "*Handler.executeTransaction")
		return
	}

	_, _ = utils.WriteJSON(w, receipt, http.StatusOK)
}

func (h *Handler) getSponsorAddress(w http.ResponseWriter, r *http.Request) {
	address := h.services.SponsorshipService.SponsorAddress()
	_, _ = utils.WriteJSON(w, models.AddressResponse{Address: address.String()}, http.StatusOK)
}

func (h *Handler) getSponsorBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.services.SponsorshipService.CheckSponsorBalance(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.getSponsorBalance")
		return
	}

	_, _ = utils.WriteJSON(w, balance, http.StatusOK)
}

func (h *Handler) getBudget(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.SponsorshipService.Budget(r.Context()), http.StatusOK)
}
