// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// maxHistoryLimit caps ?limit= on the history route.
const maxHistoryLimit = 100

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AnalysisRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.PropertyAnalysisService.Run(ctx, username, req)
	if err != nil {
		writeServiceError(w, r, err, "analysis failed")
		return
	}

	logger.FromRequest(r).Info().
		Str("username", username).
		Str("id", result.ID).
		Str("backend", result.Backend).
		Msg("analysis completed")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := usernameFromRequest(w, r)
	if !ok {
		return
	}

	limit, err := parseHistoryLimit(r.URL.Query().Get("limit"))
	if err != nil {
		logger.FromRequest(r).Err(err).Send()
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	records, err := h.services.PropertyAnalysisService.History(ctx, username, limit)
	if err != nil {
		writeServiceError(w, r, err, "history lookup failed")
		return
	}
	if records == nil {
		records = []models.AnalysisRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// parseHistoryLimit parses ?limit=. Empty means the repository default;
// values above maxHistoryLimit are clamped.
func parseHistoryLimit(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHistoryLimit, raw)
	}
	return min(limit, maxHistoryLimit), nil
}
