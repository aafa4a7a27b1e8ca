// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged server configuration after defaults have been
// applied.
//
// A missing generator key is not an error: the server starts and answers
// every analysis with a service-unavailable result.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.FreeMaxUses < 0 || cfg.App.QuotaWindow < 0 {
		return fmt.Errorf("%w: quota settings must not be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.AccountsFile == "" {
		return fmt.Errorf("%w: accounts file is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverSQLite, DriverPostgres:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= cfg.Generator.Timeout {
		return fmt.Errorf("%w: request timeout %s must exceed generator timeout %s",
			ErrInvalidServerConfigs, cfg.Server.RequestTimeout, cfg.Generator.Timeout)
	}

	switch cfg.Generator.Provider {
	case ProviderAuto:
	case ProviderGemini:
		if cfg.Generator.GeminiAPIKey == "" {
			return fmt.Errorf("%w: gemini provider selected without a key", ErrInvalidGeneratorConfigs)
		}
	case ProviderOpenAI:
		if cfg.Generator.OpenAIAPIKey == "" {
			return fmt.Errorf("%w: openai provider selected without a key", ErrInvalidGeneratorConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidGeneratorConfigs, cfg.Generator.Provider)
	}

	return nil
}

// validateClient checks only what the terminal client needs.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
