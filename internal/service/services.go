// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-property-analyzer/internal/adapter"
	"github.com/MKhiriev/go-property-analyzer/internal/config"
	"github.com/MKhiriev/go-property-analyzer/internal/crypto"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/store"
	"github.com/MKhiriev/go-property-analyzer/models"
)

// Services aggregates the server-side services used by the handlers.
type Services struct {
	AccountService          AccountService
	AuthService             AuthService
	AnalysisService         AnalysisService
	PropertyAnalysisService PropertyAnalysisService
	AppInfoService          AppInfoService
}

// NewServices wires all server services. generator may be nil when no
// text-generation backend is configured.
func NewServices(
	storages *store.Storages,
	generator adapter.Generator,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		return nil, err
	}

	accountService := NewAccountService(storages.AccountRepository, crypto.NewPasswordHasher(cfg.App.PasswordHashCost), cfg.App, log)
	analysisService := NewAnalysisService(generator, cfg.Generator, log)
	propertyAnalysisService := NewPropertyAnalysisValidationService().
		Wrap(NewPropertyAnalysisService(accountService, analysisService, storages.AnalysisHistoryRepository, log))

	return &Services{
		AccountService:          accountService,
		AuthService:             NewAuthService(cfg.App, log),
		AnalysisService:         analysisService,
		PropertyAnalysisService: propertyAnalysisService,
		AppInfoService:          appInfoService,
	}, nil
}
