// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func testBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	b.dotEnvPaths = nil
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Equal(t, []string{".env"}, b.dotEnvPaths)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := testBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := testBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}, App: App{FreeMaxUses: 3}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 3, cfg.App.FreeMaxUses, "zero values must not override")
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFileIntoEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_ISSUER=from-dotenv\n"), 0o600))
	t.Setenv("APP_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_ISSUER"))

	b := testBuilder()
	b.dotEnvPaths = []string{p}
	b.withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.TokenIssuer)
}

func TestWithDotEnv_DoesNotOverrideExistingEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("APP_VERSION", "from-env")

	b := testBuilder()
	b.dotEnvPaths = []string{p}
	b.withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	b := testBuilder()
	b.dotEnvPaths = []string{filepath.Join(t.TempDir(), "absent.env")}
	b.withDotEnv()

	assert.NoError(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := testBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("GENERATOR_PROVIDER", "gemini")

	b := testBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "gemini", b.configs[0].Generator.Provider)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APP_FREE_MAX_USES", "many")

	b := testBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := testBuilder("-a", "localhost:9999", "-f", "/tmp/accounts.json", "-provider", "openai")
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9999", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "/tmp/accounts.json", b.configs[0].Storage.AccountsFile)
	assert.Equal(t, "openai", b.configs[0].Generator.Provider)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := testBuilder("-unknown")
	b.withFlags()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Generator.OpenAIModel = "gpt-4o-mini"
	path := writeTempJSONConfig(t, payload)

	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "gpt-4o-mini", b.configs[1].Generator.OpenAIModel)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := testBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := testBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilderChain_JSONOverridesFlagsAndEnv(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = "127.0.0.1:7000"
	payload.Generator.Timeout = Duration(10 * time.Second)
	path := writeTempJSONConfig(t, payload)

	t.Setenv("SERVER_ADDRESS", "localhost:1111")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")

	cfg, err := testBuilder("-a", "localhost:2222", "-c", path).
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, 10*time.Second, cfg.Generator.Timeout)
}
