// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-property-analyzer/internal/adapter"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
)

// ClientServices aggregates the services of the terminal client.
type ClientServices struct {
	ClientService ClientService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		ClientService: NewClientService(serverAdapter, log),
	}
}
