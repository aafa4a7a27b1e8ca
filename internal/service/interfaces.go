// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-property-analyzer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService manages registered users and their analysis quota.
type AccountService interface {
	// Register creates a free or premium account. Returns ErrInvalidInput,
	// ErrDuplicateUser or ErrPersistence.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Authenticate checks the password. Returns ErrNotFound or
	// ErrInvalidCredentials. No session is created.
	Authenticate(ctx context.Context, username, password string) (models.UserAccount, error)

	// HasQuota resets an expired quota window and reports whether one more
	// analysis may run. Unknown users have no quota. The error is reserved
	// for a failed write of the reset.
	HasQuota(ctx context.Context, username string) (bool, error)

	// RecordUsage adds one analysis to the counter. Unknown users are ignored.
	RecordUsage(ctx context.Context, username string) error

	// PlanOf returns the stored plan, or free for unknown users.
	PlanOf(ctx context.Context, username string) models.Plan

	// Upgrade switches the plan and reports whether the user exists.
	Upgrade(ctx context.Context, username string, plan models.Plan) (bool, error)

	// Usage returns the quota summary shown to the user.
	Usage(ctx context.Context, username string) (models.UsageSummary, error)
}

// AuthService issues and verifies the bearer tokens of the HTTP API.
type AuthService interface {
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AnalysisService sends one property to the text-generation backend.
type AnalysisService interface {
	// Analyze builds the prompt and performs exactly one remote call.
	// Failures are ErrServiceUnavailable, ErrQuotaExceeded,
	// ErrContentFiltered or ErrUpstream.
	Analyze(ctx context.Context, property models.PropertyInput, comps []models.ComparableEntry) (string, error)

	// Available reports whether a backend is configured.
	Available() bool

	Status() models.ServiceStatus
}

// PropertyAnalysisService runs the whole analysis workflow for a user:
// quota check, backend call, usage accounting, metrics, comparison and
// history.
type PropertyAnalysisService interface {
	Run(ctx context.Context, username string, req models.AnalysisRequest) (models.AnalysisResult, error)

	// History lists stored analyses of a premium user, newest first.
	History(ctx context.Context, username string, limit uint64) ([]models.AnalysisRecord, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
