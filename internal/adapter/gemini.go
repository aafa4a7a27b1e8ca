// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/models"
)

const geminiName = "gemini"

type geminiGenerator struct {
	client *genai.Client
	model  string

	logger *logger.Logger
}

// NewGeminiGenerator constructs a [Generator] backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, cfg config.Generator, log *logger.Logger) (Generator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.GeminiBaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.GeminiBaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		log.Err(err).Str("func", "NewGeminiGenerator").Msg("failed to create Gemini client")
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	log.Info().Str("model", cfg.GeminiModel).Msg("Gemini text generation backend ready")
	return &geminiGenerator{client: client, model: cfg.GeminiModel, logger: log}, nil
}

func (g *geminiGenerator) Name() string {
	return geminiName
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string, opts models.GenerateOptions) (string, error) {
	log := logger.FromContext(ctx)

	genCfg := &genai.GenerateContentConfig{MaxOutputTokens: opts.MaxOutputTokens}
	if opts.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(opts.Temperature)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		log.Err(err).Str("func", "*geminiGenerator.Generate").Str("model", g.model).Msg("generate content failed")
		return "", mapGeminiError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrBackendBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 {
		switch reason := resp.Candidates[0].FinishReason; reason {
		case genai.FinishReasonSafety, genai.FinishReasonBlocklist, genai.FinishReasonProhibitedContent:
			return "", fmt.Errorf("%w: finish reason %s", ErrBackendBlocked, reason)
		}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", classifyBackendStatus(apiErr.Code, apiErr.Status, apiErr.Message), err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return fmt.Errorf("%w: %w", classifyBackendStatus(apiErrPtr.Code, apiErrPtr.Status, apiErrPtr.Message), err)
	}
	return classifyTransportError(err)
}
