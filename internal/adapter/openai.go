// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/utils"
	"github.com/MKhiriev/go-property-analyzer/models"
)

const (
	openAIName = "openai"

	chatCompletionsPath = "/chat/completions"
	finishContentFilter = "content_filter"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   int32         `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

type openAIErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

type openAIGenerator struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewOpenAIGenerator constructs a [Generator] for any OpenAI-compatible chat
// completions API. The call deadline comes from the request context.
func NewOpenAIGenerator(cfg config.Generator, log *logger.Logger) Generator {
	log.Info().Str("model", cfg.OpenAIModel).Str("base_url", cfg.OpenAIBaseURL).Msg("OpenAI text generation backend ready")
	return &openAIGenerator{
		client: utils.NewHTTPClient(cfg.OpenAIBaseURL, 0),
		apiKey: cfg.OpenAIAPIKey,
		model:  cfg.OpenAIModel,
		logger: log,
	}
}

func (o *openAIGenerator) Name() string {
	return openAIName
}

func (o *openAIGenerator) Generate(ctx context.Context, prompt string, opts models.GenerateOptions) (string, error) {
	log := logger.FromContext(ctx)

	body := chatCompletionRequest{
		Model:     o.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: opts.MaxOutputTokens,
	}
	if opts.Temperature > 0 {
		body.Temperature = &opts.Temperature
	}

	var (
		result  chatCompletionResponse
		failure openAIErrorResponse
	)
	resp, err := o.client.R().
		SetContext(ctx).
		SetAuthToken(o.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		SetError(&failure).
		Post(chatCompletionsPath)
	if err != nil {
		log.Err(err).Str("func", "*openAIGenerator.Generate").Msg("chat completion request failed")
		return "", classifyTransportError(err)
	}

	if resp.IsError() {
		message := failure.Error.Message
		if message == "" {
			message = strings.TrimSpace(string(resp.Body()))
		}
		log.Error().Int("status", resp.StatusCode()).Str("type", failure.Error.Type).
			Str("func", "*openAIGenerator.Generate").Msg("chat completion rejected")
		return "", fmt.Errorf("%w: http %d: %s",
			classifyBackendStatus(resp.StatusCode(), failure.Error.Type, message), resp.StatusCode(), message)
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	choice := result.Choices[0]
	if choice.FinishReason == finishContentFilter {
		return "", fmt.Errorf("%w: finish reason %s", ErrBackendBlocked, choice.FinishReason)
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return choice.Message.Content, nil
}
