// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUsernameInContext is returned when an authenticated route finds no
	// username in the request context.
	ErrNoUsernameInContext = errors.New("no username in request context")

	// ErrInvalidHistoryLimit is returned for a non-numeric ?limit= value.
	ErrInvalidHistoryLimit = errors.New("invalid history limit")
)
