// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/internal/adapter"
	"github.com/MKhiriev/go-property-analyzer/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidInput

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrInvalidCredentials
		case app.MsgTokenIsExpired, app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		case app.MsgNoUsernameProvided:
			return ErrNotAuthenticated
		}
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return ErrNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		return ErrDuplicateUser

	case errors.Is(err, adapter.ErrForbidden):
		return ErrPremiumRequired

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrUsageLimitReached

	case errors.Is(err, adapter.ErrNotImplemented):
		return ErrHistoryUnavailable

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrServiceUnavailable

	case errors.Is(err, adapter.ErrUnprocessable):
		return ErrContentFiltered

	case errors.Is(err, adapter.ErrBadGateway):
		if msg == app.MsgAnalysisQuotaExceeded {
			return ErrQuotaExceeded
		}
		return ErrUpstream

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgStorageFailure {
			return ErrPersistence
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
