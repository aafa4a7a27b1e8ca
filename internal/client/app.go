// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/internal/tui"
	"github.com/MKhiriev/go-property-analyzer/models"
)

var (
	errNoClientServices = errors.New("no client services provided")
	errNoUI             = errors.New("no terminal UI provided")
)

// UI is the part of [tui.TUI] the application drives.
type UI interface {
	LoginFlow(ctx context.Context) (models.UsageSummary, error)
	MainLoop(ctx context.Context, usage models.UsageSummary) (logout bool, err error)
}

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (Client, error) {
	if services == nil || services.ClientService == nil {
		return nil, errNoClientServices
	}
	if ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run alternates between the login flow and the main screens until the
// user quits. Logging out returns to the login flow.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logServerVersion(ctx)

	for {
		usage, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.ui.MainLoop(ctx, usage)
		if err != nil {
			return err
		}
		if !logout {
			a.services.ClientService.Logout()
			return nil
		}
		a.logger.Info().Str("func", "*App.run").Msg("user logged out")
	}
}

func (a *App) logServerVersion(ctx context.Context) {
	version, err := a.services.ClientService.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.logServerVersion").Msg("server version is unavailable")
		return
	}
	a.logger.Info().Str("server_version", version).Msg("connected to server")
}
