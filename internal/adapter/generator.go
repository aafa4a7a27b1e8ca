// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
)

// NewGenerator builds the backend selected by cfg.Provider. In auto mode
// Gemini wins when its key is set, then OpenAI. ErrNoGeneratorConfigured is
// returned when the chosen backend has no key; callers treat that as "service
// unavailable" rather than a startup failure.
func NewGenerator(ctx context.Context, cfg config.Generator, log *logger.Logger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, ErrNoGeneratorConfigured
		}
		return NewGeminiGenerator(ctx, cfg, log)
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, ErrNoGeneratorConfigured
		}
		return NewOpenAIGenerator(cfg, log), nil
	case config.ProviderAuto, "":
		switch {
		case cfg.GeminiAPIKey != "":
			return NewGeminiGenerator(ctx, cfg, log)
		case cfg.OpenAIAPIKey != "":
			return NewOpenAIGenerator(cfg, log), nil
		default:
			log.Warn().Str("func", "NewGenerator").Msg("no API key configured for any text generation backend")
			return nil, ErrNoGeneratorConfigured
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
