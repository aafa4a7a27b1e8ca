// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token or quota settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing account file path or an
	// unsupported history database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// request timeout shorter than the generation timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeneratorConfigs indicates an unknown provider or a
	// provider selected without its key.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
