// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/mock"
	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func freeUsage(remaining int) models.UsageSummary {
	return models.UsageSummary{
		Username:  "alice",
		Plan:      models.PlanFree,
		Used:      5 - remaining,
		MaxUses:   5,
		Remaining: remaining,
		NextReset: testNow.Add(72 * time.Hour),
	}
}

func newTestMainLoop(t *testing.T, usage models.UsageSummary) (mainLoopModel, *mock.MockClientService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockClientService(ctrl)

	m := newMainLoopModel(context.Background(), client, usage)
	m.now = func() time.Time { return testNow }
	return m, client
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

func TestMainLoop_LoadUsageAndStatus(t *testing.T) {
	m, client := newTestMainLoop(t, models.UsageSummary{})
	client.EXPECT().Usage(gomock.Any()).Return(freeUsage(4), nil)
	client.EXPECT().Status(gomock.Any()).Return(models.ServiceStatus{Available: true, Backend: "gemini"}, nil)

	m, _ = update(t, m, m.cmdLoadUsage()())
	m, _ = update(t, m, m.cmdLoadStatus()())

	assert.Equal(t, 4, m.usage.Remaining)
	assert.True(t, m.statusKnown)
	view := m.View()
	assert.Contains(t, view, "Logged in as: alice")
	assert.Contains(t, view, "Remaining analyses: 4 of 5")
	assert.Contains(t, view, "(gemini)")
}

func TestMainLoop_AnalyzeFlow(t *testing.T) {
	m, client := newTestMainLoop(t, freeUsage(2))

	m, _ = update(t, m, runeKey("a"))
	require.Equal(t, screenForm, m.screen)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.analyzing)

	// keys are ignored while the request is running
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenForm, m.screen)

	req, err := m.form.request()
	require.NoError(t, err)
	result := models.AnalysisResult{
		ID:      "id-1",
		Text:    "Rent: $2,000. Yield 8%.",
		Metrics: models.NewMetricSet(),
		Usage:   freeUsage(1),
	}
	client.EXPECT().Analyze(gomock.Any(), req).Return(result, nil)

	m, _ = update(t, m, m.cmdAnalyze(req)())
	assert.False(t, m.analyzing)
	assert.Equal(t, screenResult, m.screen)
	assert.Equal(t, 1, m.usage.Remaining)
	assert.Equal(t, result.Text, m.copySource)
	assert.Contains(t, m.View(), "ANALYSIS RESULT")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenDashboard, m.screen)
}

func TestMainLoop_AnalyzeFailureStaysOnForm(t *testing.T) {
	m, _ := newTestMainLoop(t, freeUsage(2))
	m.screen = screenForm
	m.analyzing = true

	m, cmd := update(t, m, analysisDoneMsg{err: service.ErrQuotaExceeded})

	assert.Nil(t, cmd)
	assert.Equal(t, screenForm, m.screen)
	assert.Equal(t, service.UserErrorText(service.ErrQuotaExceeded), m.errMsg)
}

func TestMainLoop_AnalyzeUsageLimitReloadsUsage(t *testing.T) {
	m, client := newTestMainLoop(t, freeUsage(1))
	m.screen = screenForm
	m.analyzing = true

	m, cmd := update(t, m, analysisDoneMsg{err: service.ErrUsageLimitReached})
	require.NotNil(t, cmd)
	assert.Contains(t, m.errMsg, "Usage limit reached")

	client.EXPECT().Usage(gomock.Any()).Return(freeUsage(0), nil)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 0, m.usage.Remaining)
}

func TestMainLoop_FormInvalidNumber(t *testing.T) {
	m, _ := newTestMainLoop(t, freeUsage(2))
	m.screen = screenForm
	m.form.fields[fieldBedrooms].input.SetValue("many")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.analyzing)
	assert.Contains(t, m.errMsg, "Bedrooms")
}

func TestMainLoop_FormBlockedWhenLimitReached(t *testing.T) {
	m, _ := newTestMainLoop(t, freeUsage(0))

	m, _ = update(t, m, runeKey("a"))

	assert.Equal(t, screenDashboard, m.screen)
	assert.Contains(t, m.errMsg, "Usage limit reached")
	assert.Contains(t, m.View(), "Usage Limit Reached")
}

func TestMainLoop_Upgrade(t *testing.T) {
	m, client := newTestMainLoop(t, freeUsage(0))

	m, _ = update(t, m, runeKey("u"))
	require.Equal(t, screenUpgrade, m.screen)
	assert.Contains(t, m.View(), "Unlimited AI analyses")

	m, cmd := update(t, m, runeKey("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.upgrading)

	premium := models.UsageSummary{Username: "alice", Plan: models.PlanPremium, MaxUses: models.UnlimitedUses, Remaining: models.UnlimitedUses}
	client.EXPECT().Upgrade(gomock.Any()).Return(premium, nil)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenDashboard, m.screen)
	assert.Equal(t, models.PlanPremium, m.usage.Plan)
	assert.Equal(t, "Upgraded to Premium!", m.notice)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.notice)

	// a premium user is not asked again
	m, _ = update(t, m, runeKey("u"))
	assert.Equal(t, screenDashboard, m.screen)
}

func TestMainLoop_UpgradeCancelled(t *testing.T) {
	m, _ := newTestMainLoop(t, freeUsage(3))
	m.screen = screenUpgrade

	m, cmd := update(t, m, runeKey("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, screenDashboard, m.screen)
}

func TestMainLoop_History(t *testing.T) {
	m, client := newTestMainLoop(t, models.UsageSummary{Username: "alice", Plan: models.PlanPremium, MaxUses: models.UnlimitedUses})

	m, cmd := update(t, m, runeKey("h"))
	require.NotNil(t, cmd)
	require.Equal(t, screenHistory, m.screen)
	assert.Contains(t, m.View(), "Loading history...")

	records := []models.AnalysisRecord{
		{ID: "1", Address: "1 Elm St", PurchasePrice: 250000, AnalysisText: "first", CreatedAt: testNow},
		{ID: "2", Address: "2 Oak St", PurchasePrice: 310000, AnalysisText: "second", CreatedAt: testNow.Add(-time.Hour)},
	}
	client.EXPECT().History(gomock.Any(), historyPageSize).Return(records, nil)

	m, _ = update(t, m, cmd())
	assert.Len(t, m.history, 2)
	assert.Contains(t, m.View(), "2 Oak St")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenRecord, m.screen)
	assert.Equal(t, "second", m.copySource)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenHistory, m.screen)
}

func TestMainLoop_HistoryPremiumRequired(t *testing.T) {
	m, client := newTestMainLoop(t, freeUsage(3))
	client.EXPECT().History(gomock.Any(), historyPageSize).Return(nil, service.ErrPremiumRequired)

	m, cmd := update(t, m, runeKey("h"))
	m, _ = update(t, m, cmd())

	assert.False(t, m.historyLoading)
	assert.Equal(t, "Analysis history is a premium feature", m.errMsg)
	assert.NotContains(t, m.View(), "No saved analyses yet")
}

func TestMainLoop_CopyNothing(t *testing.T) {
	msg := cmdCopyToClipboard("   ")()

	copied, ok := msg.(copiedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, copied.err, errNothingToCopy)
}

func TestMainLoop_Logout(t *testing.T) {
	m, client := newTestMainLoop(t, freeUsage(3))
	client.EXPECT().Logout()

	m, cmd := update(t, m, runeKey("l"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.logout)
}

func TestMainLoop_DashboardMenuSelect(t *testing.T) {
	m, client := newTestMainLoop(t, freeUsage(3))
	client.EXPECT().Logout()

	for range dashboardActions {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(dashboardActions)-1, m.menuIdx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.logout)
}

func TestMainLoop_WindowResize(t *testing.T) {
	m, _ := newTestMainLoop(t, freeUsage(3))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 116, m.viewport.Width)
	assert.Equal(t, 40-pageChromeHeight, m.viewport.Height)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 6})
	assert.Equal(t, 5, m.viewport.Height)
}
