// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file. Durations are accepted as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashCost int      `json:"password_hash_cost"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		Version          string   `json:"version"`
		FreeMaxUses      int      `json:"free_max_uses"`
		QuotaWindow      Duration `json:"quota_window"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		AccountsFile string `json:"accounts_file"`
		DB           struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Generator struct {
		Provider        string   `json:"provider"`
		GeminiAPIKey    string   `json:"gemini_api_key"`
		GeminiModel     string   `json:"gemini_model"`
		GeminiBaseURL   string   `json:"gemini_base_url"`
		OpenAIAPIKey    string   `json:"openai_api_key"`
		OpenAIBaseURL   string   `json:"openai_base_url"`
		OpenAIModel     string   `json:"openai_model"`
		Temperature     float32  `json:"temperature"`
		MaxOutputTokens int32    `json:"max_output_tokens"`
		Timeout         Duration `json:"timeout"`
	} `json:"generator,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			Version:          jsonCfg.App.Version,
			FreeMaxUses:      jsonCfg.App.FreeMaxUses,
			QuotaWindow:      time.Duration(jsonCfg.App.QuotaWindow),
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			AccountsFile: jsonCfg.Storage.AccountsFile,
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Generator: Generator{
			Provider:        jsonCfg.Generator.Provider,
			GeminiAPIKey:    jsonCfg.Generator.GeminiAPIKey,
			GeminiModel:     jsonCfg.Generator.GeminiModel,
			GeminiBaseURL:   jsonCfg.Generator.GeminiBaseURL,
			OpenAIAPIKey:    jsonCfg.Generator.OpenAIAPIKey,
			OpenAIBaseURL:   jsonCfg.Generator.OpenAIBaseURL,
			OpenAIModel:     jsonCfg.Generator.OpenAIModel,
			Temperature:     jsonCfg.Generator.Temperature,
			MaxOutputTokens: jsonCfg.Generator.MaxOutputTokens,
			Timeout:         time.Duration(jsonCfg.Generator.Timeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
