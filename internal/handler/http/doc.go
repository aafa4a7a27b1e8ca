// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the property analyzer server.
//
// It wires routes, request handlers and middleware. Tracing, access logging,
// response compression and bearer-token authentication are handled here
// before requests are delegated to the service layer. Service errors are
// translated into status codes and the message constants of package app,
// which the terminal client maps back to the same errors.
package http
