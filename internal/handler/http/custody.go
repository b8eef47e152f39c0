// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-fee-sponsor/internal/app"
	"github.com/MKhiriev/go-fee-sponsor/internal/ledger"
	"github.com/MKhiriev/go-fee-sponsor/internal/logger"
	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
	"github.com/MKhiriev/go-fee-sponsor/models"
)

// getOrCreateKeypair provisions the caller's custodial keypair on first
// call and returns its public view on every call.
func (h *Handler) getOrCreateKeypair(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserIDInContext).Str("func", "*Handler.getOrCreateKeypair").Send()
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	kp, err := h.services.CustodyService.GetOrCreateKeypair(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getOrCreateKeypair")
		return
	}

	address, err := ledger.AddressFromPublicKey(kp.PublicKey)
	if err != nil {
		writeError(w, r, err, "*Handler.getOrCreateKeypair")
		return
	}

	_, _ = utils.WriteJSON(w, models.KeypairView{
		UserID:     kp.UserID,
		Address:    address.String(),
		PublicKey:  kp.PublicKey,
		CreatedAt:  time.UnixMilli(kp.CreatedAt).UTC(),
		LastUsedAt: time.UnixMilli(kp.LastUsedAt).UTC(),
	}, http.StatusOK)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserIDInContext).Str("func", "*Handler.getAddress").Send()
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	address, err := h.services.CustodyService.GetAddress(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getAddress")
		return
	}

	_, _ = utils.WriteJSON(w, models.AddressResponse{Address: address.String()}, http.StatusOK)
}

func (h *Handler) deleteKeypair(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserIDInContext).Str("func", "*Handler.deleteKeypair").Send()
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	if err := h.services.CustodyService.DeleteKeypair(r.Context(), userID); err != nil {
		writeError(w, r, err, "*Handler.deleteKeypair")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
