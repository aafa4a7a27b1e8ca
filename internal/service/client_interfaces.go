// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-property-analyzer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientService is the terminal client's view of the analyzer. It keeps the
// session of the logged-in user and translates transport errors back into
// the service errors of this package.
type ClientService interface {
	// Register validates the form locally, creates the account on the server
	// and starts a session.
	Register(ctx context.Context, req models.RegisterRequest) (models.UsageSummary, error)

	// Login starts a session for username.
	Login(ctx context.Context, username, password string) (models.UsageSummary, error)

	// Logout drops the session token.
	Logout()

	// Username returns the logged-in user, or "" without a session.
	Username() string

	Usage(ctx context.Context) (models.UsageSummary, error)

	// Upgrade moves the logged-in user to the premium plan.
	Upgrade(ctx context.Context) (models.UsageSummary, error)

	// Analyze validates the request locally and runs it on the server.
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)

	History(ctx context.Context, limit int) ([]models.AnalysisRecord, error)
	Status(ctx context.Context) (models.ServiceStatus, error)
	ServerVersion(ctx context.Context) (string, error)
}
