// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// text-generation backends
var (
	ErrNoGeneratorConfigured = errors.New("no text generation backend configured")
	ErrUnknownProvider       = errors.New("unknown text generation provider")

	ErrBackendUnavailable = errors.New("generation backend unavailable")
	ErrBackendRateLimited = errors.New("generation backend quota exceeded")
	ErrBackendBlocked     = errors.New("generation blocked by content filter")
	ErrBackendRejected    = errors.New("generation backend rejected the request")
	ErrEmptyCompletion    = errors.New("generation backend returned no text")
)

// analyzer HTTP API, one per response status
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrNotImplemented      = errors.New("not implemented")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInvalidToken        = errors.New("server returned no bearer token")
)
