// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/internal/validators"
)

// errorResponse is one entry of the service error table.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{target: validators.ErrPasswordsMismatch, status: http.StatusBadRequest, message: app.MsgPasswordsDontMatch},
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: app.MsgInvalidDataProvided},
	{target: service.ErrDuplicateUser, status: http.StatusConflict, message: app.MsgUsernameAlreadyExists},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: app.MsgUserNotFound},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: app.MsgInvalidLoginPassword},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: app.MsgTokenIsExpiredOrInvalid},
	{target: service.ErrNotAuthenticated, status: http.StatusUnauthorized, message: app.MsgNoUsernameProvided},
	{target: service.ErrPersistence, status: http.StatusInternalServerError, message: app.MsgStorageFailure},
	{target: service.ErrUsageLimitReached, status: http.StatusTooManyRequests, message: app.MsgUsageLimitReached},
	{target: service.ErrPremiumRequired, status: http.StatusForbidden, message: app.MsgPremiumRequired},
	{target: service.ErrHistoryUnavailable, status: http.StatusNotImplemented, message: app.MsgHistoryUnavailable},
	{target: service.ErrServiceUnavailable, status: http.StatusServiceUnavailable, message: app.MsgAnalysisServiceUnavailable},
	{target: service.ErrQuotaExceeded, status: http.StatusBadGateway, message: app.MsgAnalysisQuotaExceeded},
	{target: service.ErrContentFiltered, status: http.StatusUnprocessableEntity, message: app.MsgAnalysisContentFiltered},
	{target: service.ErrUpstream, status: http.StatusBadGateway, message: app.MsgAnalysisFailed},
}

// statusFromError returns the status code and response message for err.
// Unknown errors become 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and answers with its mapped status and message.
// Client-side failures are logged at warn level.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, message, status)
}
