// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// property analyzer. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds account, token and quota settings.
	App App `envPrefix:"APP_"`

	// Storage holds the account file location and the optional analysis
	// history database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Generator holds the text-generation backend credentials and call
	// parameters.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Adapter holds the client-side connection settings for the HTTP server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// FreeMaxUses is the number of analyses granted to a free account per
	// quota window. Env: APP_FREE_MAX_USES
	FreeMaxUses int `env:"FREE_MAX_USES"`

	// QuotaWindow is the rolling window after which the usage counter is
	// reset. Env: APP_QUOTA_WINDOW
	QuotaWindow time.Duration `env:"QUOTA_WINDOW"`

	// LogLevel narrows the global log level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// AccountsFile is the path of the JSON account table.
	// Env: STORAGE_ACCOUNTS_FILE
	AccountsFile string `env:"ACCOUNTS_FILE"`

	// DB holds the analysis history database settings. History is disabled
	// when DB.DSN is empty.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the analysis history database.
type DB struct {
	// DSN is the data source name, a file path for SQLite or a
	// postgres:// URL for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request. It must exceed
	// Generator.Timeout, since an analysis request waits for the backend.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Generator holds the text-generation backend settings. Credentials are only
// ever read from here; nothing in the code base carries a key.
type Generator struct {
	// Provider selects the backend: "gemini", "openai", or empty/"auto"
	// to pick the first backend that has a key. Env: GENERATOR_PROVIDER
	Provider string `env:"PROVIDER"`

	// GeminiAPIKey is the Google AI Studio key. Env: GENERATOR_GEMINI_API_KEY
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the Gemini model name. Env: GENERATOR_GEMINI_MODEL
	GeminiModel string `env:"GEMINI_MODEL"`

	// GeminiBaseURL overrides the Gemini API endpoint, e.g. for a proxy.
	// Empty keeps the SDK default. Env: GENERATOR_GEMINI_BASE_URL
	GeminiBaseURL string `env:"GEMINI_BASE_URL"`

	// OpenAIAPIKey is the bearer key of the OpenAI-compatible API.
	// Env: GENERATOR_OPENAI_API_KEY
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// OpenAIBaseURL is the base URL of the chat completions API.
	// Env: GENERATOR_OPENAI_BASE_URL
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// OpenAIModel is the chat model name. Env: GENERATOR_OPENAI_MODEL
	OpenAIModel string `env:"OPENAI_MODEL"`

	// Temperature is the sampling temperature. Env: GENERATOR_TEMPERATURE
	Temperature float32 `env:"TEMPERATURE"`

	// MaxOutputTokens caps the reply length. Env: GENERATOR_MAX_OUTPUT_TOKENS
	MaxOutputTokens int32 `env:"MAX_OUTPUT_TOKENS"`

	// Timeout bounds one outbound generation call. Env: GENERATOR_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Adapter holds the client-side settings used to reach the HTTP server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Sources, in priority order (last non-zero value wins):
//  1. Environment variables (after an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// GetClientConfig loads the same sources as [GetStructuredConfig] and
// validates only the settings the terminal client needs.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validateClient(); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	return cfg, nil
}
