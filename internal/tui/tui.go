// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-property-analyzer/internal/logger"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit         = errors.New("user quit the program")
	errNoClientServices = errors.New("no client services provided")
	errUnexpectedModel  = errors.New("unexpected final model")
)

// TUI runs the terminal screens of the client on top of [service.ClientService].
type TUI struct {
	client    service.ClientService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.ClientService == nil {
		return nil, errNoClientServices
	}
	return &TUI{client: services.ClientService, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow shows the start menu until the user logs in or registers. It
// returns [ErrUserQuit] when the user leaves with Ctrl+C.
func (t *TUI) LoginFlow(ctx context.Context) (models.UsageSummary, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.client),
		pageRegister: NewRegisterModel(ctx, t.client),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.LoginFlow").Msg("login program failed")
		return models.UsageSummary{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.UsageSummary{}, errUnexpectedModel
	}
	if result.quitByUser {
		return models.UsageSummary{}, ErrUserQuit
	}

	t.logger.Info().Str("username", result.username).Msg("session started")
	return result.usage, nil
}

// MainLoop runs the analyzer screens of a logged-in user. logout is true
// when the user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, usage models.UsageSummary) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.client, usage)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "*TUI.MainLoop").Msg("main program failed")
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, errUnexpectedModel
	}
	return result.logout, nil
}
