// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 30*time.Second)
//	resp, err := client.R().Get("/api/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with the given base URL and timeout.
// A base URL without a scheme gets "http://". An empty base URL leaves the
// client unbound, so requests must use absolute URLs. A zero timeout means no
// client-side timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	if baseURL != "" {
		client.SetBaseURL(NormalizeBaseURL(baseURL))
	}

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL prefixes addr with "http://" when it has no scheme and
// strips a trailing slash.
func NormalizeBaseURL(addr string) string {
	addr = strings.TrimRight(strings.TrimSpace(addr), "/")
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return addr
}
