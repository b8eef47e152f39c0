// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fee-sponsor/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

// getServiceInfo publishes the sponsorship policy limits. It is public so
// clients can check a transaction before asking for a token.
func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetServiceInfo(r.Context())
	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}
