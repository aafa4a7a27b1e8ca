// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API of the property analyzer.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight analyses finish.
package server
