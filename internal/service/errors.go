// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// account store
var (
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersistence        = errors.New("failed to persist account data")
)

// analysis backend
var (
	ErrServiceUnavailable = errors.New("analysis service unavailable")
	ErrQuotaExceeded      = errors.New("analysis backend quota exceeded")
	ErrContentFiltered    = errors.New("analysis blocked by content filter")
	ErrUpstream           = errors.New("analysis backend error")
)

// boundary
var (
	ErrUsageLimitReached  = errors.New("usage limit reached")
	ErrPremiumRequired    = errors.New("premium plan required")
	ErrHistoryUnavailable = errors.New("analysis history is not configured")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNotAuthenticated        = errors.New("not logged in")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
