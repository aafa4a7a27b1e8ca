// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound transports of the property analyzer.
//
// On the server side a [Generator] sends the analysis prompt to a hosted
// text-generation backend (Gemini through google.golang.org/genai, or an
// OpenAI-compatible chat completions API through resty). On the client side
// a [ServerAdapter] talks to the analyzer's own HTTP API.
//
// Transport failures are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] without knowing which backend or status code
// produced them.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-property-analyzer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Generator produces text for a prompt using a remote model.
type Generator interface {
	// Generate performs exactly one remote call and returns the model reply.
	// Failures are wrapped in one of ErrBackendUnavailable,
	// ErrBackendRateLimited, ErrBackendBlocked, ErrBackendRejected or
	// ErrEmptyCompletion.
	Generate(ctx context.Context, prompt string, opts models.GenerateOptions) (string, error)

	// Name is the backend label shown to users ("gemini", "openai").
	Name() string
}

// ServerAdapter is the client-side transport to the analyzer HTTP API.
// Implementations keep the bearer token returned by Register and Login and
// attach it to every authenticated request.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.UsageSummary, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.UsageSummary, error)

	Usage(ctx context.Context) (models.UsageSummary, error)
	Upgrade(ctx context.Context, req models.UpgradeRequest) (models.UsageSummary, error)
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
	History(ctx context.Context, limit int) ([]models.AnalysisRecord, error)
	Status(ctx context.Context) (models.ServiceStatus, error)
	Version(ctx context.Context) (string, error)
}
