// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "boom", responseMessage([]byte(`{"error":"boom"}`)))
	assert.Equal(t, "plain text", responseMessage([]byte(" plain text\n")))
	assert.Equal(t, `{"other":"x"}`, responseMessage([]byte(`{"other":"x"}`)))
}

func TestClassifyBackendStatus(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		status  string
		message string
		want    error
	}{
		{"429", http.StatusTooManyRequests, "", "", ErrBackendRateLimited},
		{"resource exhausted", http.StatusBadRequest, "RESOURCE_EXHAUSTED", "", ErrBackendRateLimited},
		{"quota message", 0, "", "You exceeded your current quota", ErrBackendRateLimited},
		{"insufficient quota type", http.StatusBadRequest, "insufficient_quota", "", ErrBackendRateLimited},
		{"safety", http.StatusBadRequest, "", "blocked by safety settings", ErrBackendBlocked},
		{"content filter", http.StatusBadRequest, "", "content_filter triggered", ErrBackendBlocked},
		{"server error", http.StatusInternalServerError, "", "", ErrBackendUnavailable},
		{"bad key", http.StatusUnauthorized, "", "invalid api key", ErrBackendUnavailable},
		{"unavailable", http.StatusBadRequest, "UNAVAILABLE", "", ErrBackendUnavailable},
		{"other 400", http.StatusBadRequest, "INVALID_ARGUMENT", "bad model", ErrBackendRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyBackendStatus(tt.code, tt.status, tt.message), tt.want)
		})
	}
}

func TestClassifyTransportError(t *testing.T) {
	assert.ErrorIs(t, classifyTransportError(context.DeadlineExceeded), ErrBackendUnavailable)
	assert.ErrorIs(t, classifyTransportError(fmt.Errorf("wrap: %w", context.Canceled)), ErrBackendUnavailable)
	assert.ErrorIs(t, classifyTransportError(errors.New("weird failure")), ErrBackendUnavailable)
	assert.ErrorIs(t, classifyTransportError(errors.New("quota exceeded")), ErrBackendRateLimited)

	err := classifyTransportError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
