// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/internal/app"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
)

const msgServerUnreachable = "No network connection or the server is unavailable"

// humanizeError turns a client service error into a line for the screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputText(err)
	case errors.Is(err, service.ErrDuplicateUser):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, service.ErrNotFound):
		return app.MsgUserNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotAuthenticated):
		return "Session expired, please log out and log in again"
	case errors.Is(err, service.ErrPersistence):
		return app.MsgStorageFailure
	case errors.Is(err, service.ErrUsageLimitReached):
		return "🚫 Usage limit reached. Upgrade to premium for unlimited analyses"
	case errors.Is(err, service.ErrPremiumRequired):
		return "Analysis history is a premium feature"
	case errors.Is(err, service.ErrHistoryUnavailable):
		return "Analysis history is not enabled on the server"
	case errors.Is(err, service.ErrServiceUnavailable),
		errors.Is(err, service.ErrQuotaExceeded),
		errors.Is(err, service.ErrContentFiltered),
		errors.Is(err, service.ErrUpstream):
		return service.UserErrorText(err)
	}

	return humanizeServerUnavailableError(err)
}

// invalidInputText drops the generic prefix so the validation reason is shown.
func invalidInputText(err error) string {
	msg := err.Error()
	prefix := service.ErrInvalidInput.Error() + ": "
	if rest, ok := strings.CutPrefix(msg, prefix); ok && rest != "" {
		return rest
	}
	return app.MsgInvalidDataProvided
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnreachable
	}

	return err.Error()
}
