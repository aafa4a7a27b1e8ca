// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-property-analyzer/internal/utils"
)

// mapHTTPError converts a non-2xx response of the analyzer API into
// "<sentinel>: <message>", where message is the "error" field of the JSON
// body or the raw body when it is not JSON.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := responseMessage(resp.Body())

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusUnprocessableEntity:
		sentinel = ErrUnprocessable
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusNotImplemented:
		sentinel = ErrNotImplemented
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %s", sentinel, body)
}

func responseMessage(raw []byte) string {
	var er utils.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Error != "" {
		return er.Error
	}
	return strings.TrimSpace(string(raw))
}

// classifyBackendStatus maps a failed generation call to a sentinel using the
// HTTP status, the provider status string and the error message.
func classifyBackendStatus(code int, status, message string) error {
	lower := strings.ToLower(status + " " + message)

	switch {
	case code == http.StatusTooManyRequests,
		strings.Contains(lower, "resource_exhausted"),
		strings.Contains(lower, "quota"),
		strings.Contains(lower, "rate limit"):
		return ErrBackendRateLimited
	case strings.Contains(lower, "safety"),
		strings.Contains(lower, "blocked"),
		strings.Contains(lower, "content filter"),
		strings.Contains(lower, "content_filter"):
		return ErrBackendBlocked
	case code >= http.StatusInternalServerError,
		code == http.StatusUnauthorized,
		code == http.StatusForbidden,
		strings.Contains(lower, "unavailable"):
		return ErrBackendUnavailable
	default:
		return ErrBackendRejected
	}
}

// classifyTransportError handles failures where no response was received.
// Those count as unavailable unless the message says otherwise.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	sentinel := classifyBackendStatus(0, "", err.Error())
	if errors.Is(sentinel, ErrBackendRejected) {
		sentinel = ErrBackendUnavailable
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
