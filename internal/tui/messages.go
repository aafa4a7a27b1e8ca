// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-property-analyzer/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login page once the server answered.
type LoginResult struct {
	Username string
	Usage    models.UsageSummary
	Err      error
}

// RegisterResult is produced by the registration page. A successful
// registration also starts a session.
type RegisterResult struct {
	Username string
	Usage    models.UsageSummary
	Err      error
}

type usageLoadedMsg struct {
	usage models.UsageSummary
	err   error
}

type statusLoadedMsg struct {
	status models.ServiceStatus
	err    error
}

type analysisDoneMsg struct {
	result models.AnalysisResult
	err    error
}

type historyLoadedMsg struct {
	records []models.AnalysisRecord
	err     error
}

type upgradeDoneMsg struct {
	usage models.UsageSummary
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
