// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-property-analyzer/internal/adapter"
	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/validators"
	"github.com/MKhiriev/go-property-analyzer/models"
)

type clientService struct {
	serverAdapter adapter.ServerAdapter

	accountValidator  validators.Validator
	propertyValidator validators.Validator

	mu       sync.RWMutex
	username string

	logger *logger.Logger
}

// NewClientService constructs the client-side service on top of
// serverAdapter.
func NewClientService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientService {
	return &clientService{
		serverAdapter:     serverAdapter,
		accountValidator:  validators.NewAccountValidator(),
		propertyValidator: validators.NewPropertyValidator(),
		logger:            log,
	}
}

func (c *clientService) Register(ctx context.Context, req models.RegisterRequest) (models.UsageSummary, error) {
	if err := c.accountValidator.Validate(ctx, req); err != nil {
		return models.UsageSummary{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	usage, err := c.serverAdapter.Register(ctx, req)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientService.Register").Str("username", req.Username).Msg("registration failed")
		return models.UsageSummary{}, mapAdapterError(err)
	}

	c.setUsername(req.Username)
	return usage, nil
}

func (c *clientService) Login(ctx context.Context, username, password string) (models.UsageSummary, error) {
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.accountValidator.Validate(ctx, req); err != nil {
		return models.UsageSummary{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	usage, err := c.serverAdapter.Login(ctx, req)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientService.Login").Str("username", username).Msg("login failed")
		return models.UsageSummary{}, mapAdapterError(err)
	}

	c.setUsername(username)
	return usage, nil
}

func (c *clientService) Logout() {
	c.serverAdapter.SetToken("")
	c.setUsername("")
}

func (c *clientService) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

func (c *clientService) setUsername(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
}

func (c *clientService) requireSession() error {
	if c.Username() == "" || c.serverAdapter.Token() == "" {
		return ErrNotAuthenticated
	}
	return nil
}

func (c *clientService) Usage(ctx context.Context) (models.UsageSummary, error) {
	if err := c.requireSession(); err != nil {
		return models.UsageSummary{}, err
	}

	usage, err := c.serverAdapter.Usage(ctx)
	if err != nil {
		return models.UsageSummary{}, mapAdapterError(err)
	}
	return usage, nil
}

func (c *clientService) Upgrade(ctx context.Context) (models.UsageSummary, error) {
	if err := c.requireSession(); err != nil {
		return models.UsageSummary{}, err
	}

	usage, err := c.serverAdapter.Upgrade(ctx, models.UpgradeRequest{Plan: models.PlanPremium})
	if err != nil {
		c.logger.Err(err).Str("func", "*clientService.Upgrade").Msg("upgrade failed")
		return models.UsageSummary{}, mapAdapterError(err)
	}
	return usage, nil
}

func (c *clientService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if err := c.requireSession(); err != nil {
		return models.AnalysisResult{}, err
	}
	if err := c.propertyValidator.Validate(ctx, req); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	result, err := c.serverAdapter.Analyze(ctx, req)
	if err != nil {
		c.logger.Err(err).Str("func", "*clientService.Analyze").Msg("analysis request failed")
		return models.AnalysisResult{}, mapAdapterError(err)
	}
	return result, nil
}

func (c *clientService) History(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	if err := c.requireSession(); err != nil {
		return nil, err
	}

	records, err := c.serverAdapter.History(ctx, limit)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return records, nil
}

func (c *clientService) Status(ctx context.Context) (models.ServiceStatus, error) {
	status, err := c.serverAdapter.Status(ctx)
	if err != nil {
		return models.ServiceStatus{}, mapAdapterError(err)
	}
	return status, nil
}

func (c *clientService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.serverAdapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
