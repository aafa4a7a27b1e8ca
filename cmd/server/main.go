// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-property-analyzer/internal/adapter"
	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/handler"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/server"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/internal/store"
	"github.com/MKhiriev/go-property-analyzer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("property-analyzer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// API keys and the token sign key stay out of the log.
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("accounts_file", cfg.Storage.AccountsFile).
		Str("history_driver", cfg.Storage.DB.Driver).
		Str("provider", cfg.Generator.Provider).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	generator, err := adapter.NewGenerator(ctx, cfg.Generator, log)
	switch {
	case errors.Is(err, adapter.ErrNoGeneratorConfigured):
		log.Warn().Msg("no text generation backend configured, analyses will report the service as unavailable")
	case err != nil:
		log.Fatal().Err(err).Msg("error creating text generation backend")
	default:
		log.Info().Str("backend", generator.Name()).Msg("text generation backend ready")
	}

	services, err := service.NewServices(storages, generator, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
