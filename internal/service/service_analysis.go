// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/adapter"
	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// analysisService is the concrete implementation of AnalysisService. A nil
// generator means no backend is configured; every Analyze then fails with
// ErrServiceUnavailable.
type analysisService struct {
	generator adapter.Generator
	options   models.GenerateOptions
	timeout   time.Duration

	logger *logger.Logger
}

// NewAnalysisService constructs an AnalysisService around generator, which
// may be nil.
func NewAnalysisService(generator adapter.Generator, cfg config.Generator, log *logger.Logger) AnalysisService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultGenerateTimeout
	}

	return &analysisService{
		generator: generator,
		options: models.GenerateOptions{
			Temperature:     cfg.Temperature,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
		timeout: timeout,
		logger:  log,
	}
}

func (s *analysisService) Analyze(ctx context.Context, property models.PropertyInput, comps []models.ComparableEntry) (string, error) {
	log := logger.FromContext(ctx)

	if s.generator == nil {
		log.Warn().Str("func", "*analysisService.Analyze").Msg("no text generation backend configured")
		return "", ErrServiceUnavailable
	}

	prompt := BuildPrompt(property, comps)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	text, err := s.generator.Generate(ctx, prompt, s.options)
	if err != nil {
		classified := classifyAnalysisError(err)
		log.Err(err).
			Str("func", "*analysisService.Analyze").
			Str("backend", s.generator.Name()).
			Dur("elapsed", time.Since(started)).
			Msg("analysis failed")
		return "", fmt.Errorf("%w: %w", classified, err)
	}

	log.Info().Str("backend", s.generator.Name()).Dur("elapsed", time.Since(started)).Int("chars", len(text)).
		Msg("analysis received")
	return text, nil
}

func (s *analysisService) Available() bool {
	return s.generator != nil
}

func (s *analysisService) Status() models.ServiceStatus {
	if s.generator == nil {
		return models.ServiceStatus{}
	}
	return models.ServiceStatus{Available: true, Backend: s.generator.Name()}
}

// classifyAnalysisError maps a generator failure to one of the four analysis
// error kinds. Adapter sentinels decide first; unknown errors fall back to
// message patterns.
func classifyAnalysisError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrBackendRateLimited):
		return ErrQuotaExceeded
	case errors.Is(err, adapter.ErrBackendBlocked):
		return ErrContentFiltered
	case errors.Is(err, adapter.ErrBackendUnavailable),
		errors.Is(err, adapter.ErrNoGeneratorConfigured),
		errors.Is(err, context.DeadlineExceeded):
		return ErrServiceUnavailable
	case errors.Is(err, adapter.ErrBackendRejected),
		errors.Is(err, adapter.ErrEmptyCompletion):
		return ErrUpstream
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"), strings.Contains(msg, "resource_exhausted"):
		return ErrQuotaExceeded
	case strings.Contains(msg, "safety"), strings.Contains(msg, "blocked"), strings.Contains(msg, "content filter"):
		return ErrContentFiltered
	case strings.Contains(msg, "unavailable"), strings.Contains(msg, "connection refused"), strings.Contains(msg, "timeout"):
		return ErrServiceUnavailable
	default:
		return ErrUpstream
	}
}
