// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// Default values applied to fields left empty by every configuration source.
const (
	DefaultAccountsFile     = "data/user_data.json"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 90 * time.Second
	DefaultTokenIssuer      = "property-analyzer"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultFreeMaxUses      = 5
	DefaultQuotaWindow      = 30 * 24 * time.Hour

	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultOpenAIBaseURL   = "https://api.openai.com/v1"
	DefaultOpenAIModel     = "gpt-3.5-turbo"
	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 800
	DefaultGenerateTimeout = 60 * time.Second

	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"

	ProviderAuto   = "auto"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// applyDefaults fills zero-valued fields. A zero Temperature is treated as
// unset, so a literal 0 cannot be configured.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.FreeMaxUses == 0 {
		cfg.App.FreeMaxUses = DefaultFreeMaxUses
	}
	if cfg.App.QuotaWindow == 0 {
		cfg.App.QuotaWindow = DefaultQuotaWindow
	}

	if cfg.Storage.AccountsFile == "" {
		cfg.Storage.AccountsFile = DefaultAccountsFile
	}
	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = guessDriver(cfg.Storage.DB.DSN)
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	cfg.Generator.Provider = strings.ToLower(strings.TrimSpace(cfg.Generator.Provider))
	if cfg.Generator.Provider == "" {
		cfg.Generator.Provider = ProviderAuto
	}
	if cfg.Generator.GeminiModel == "" {
		cfg.Generator.GeminiModel = DefaultGeminiModel
	}
	if cfg.Generator.OpenAIBaseURL == "" {
		cfg.Generator.OpenAIBaseURL = DefaultOpenAIBaseURL
	}
	if cfg.Generator.OpenAIModel == "" {
		cfg.Generator.OpenAIModel = DefaultOpenAIModel
	}
	if cfg.Generator.Temperature == 0 {
		cfg.Generator.Temperature = DefaultTemperature
	}
	if cfg.Generator.MaxOutputTokens == 0 {
		cfg.Generator.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if cfg.Generator.Timeout == 0 {
		cfg.Generator.Timeout = DefaultGenerateTimeout
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = cfg.Server.RequestTimeout
	}
}

func guessDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}
