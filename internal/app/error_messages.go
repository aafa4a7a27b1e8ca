// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// property analyzer server handlers, services and the terminal client.
//
// Msg* constants are written into HTTP response bodies and shown in the
// client. The client maps them back to service errors, so changing the wording
// of one is a protocol change.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the password does not match
	// the stored hash.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUsernameProvided is returned when an authenticated route finds no
	// account name in the request context.
	MsgNoUsernameProvided = "no username provided"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"

	// MsgUsernameAlreadyExists is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgPasswordsDontMatch is returned when the confirmation differs from
	// the password at registration.
	MsgPasswordsDontMatch = "passwords don't match"

	MsgUserNotFound = "user not found"

	// MsgUsageLimitReached is returned when a free account has no analyses
	// left in the current quota window.
	MsgUsageLimitReached = "usage limit reached, upgrade to premium for unlimited analyses"

	// MsgPremiumRequired is returned for premium-only features.
	MsgPremiumRequired = "this feature requires a premium plan"

	// MsgHistoryUnavailable is returned when analysis history storage is not
	// configured on the server.
	MsgHistoryUnavailable = "analysis history is not available"

	MsgStorageFailure = "could not save account data, please try again"
)

// User-facing analysis failure texts. Every one of them starts with an error
// marker so that metric extraction can recognise it.
const (
	MsgAnalysisServiceUnavailable = "❌ No AI services are currently available. Please check the API configuration."
	MsgAnalysisQuotaExceeded      = "❌ AI provider quota exceeded. Free tier has daily limits. Try again tomorrow."
	MsgAnalysisContentFiltered    = "⚠️ Content safety filters triggered. Please try different property details."
	MsgAnalysisFailed             = "❌ Analysis failed. Please try again."
)

// Service status labels shown by the client.
const (
	MsgServiceReady       = "✅ AI Service Ready"
	MsgServiceUnavailable = "❌ AI Service Unavailable"
)
