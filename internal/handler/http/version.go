// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-property-analyzer/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// getServiceStatus reports whether a text generation backend is configured.
func (h *Handler) getServiceStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AnalysisService.Status(), http.StatusOK)
}
