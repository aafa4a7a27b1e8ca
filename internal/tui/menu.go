// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type menuEntry struct {
	label string
	about string
	page  string
}

// MenuModel is the start screen offering login or registration.
type MenuModel struct {
	entries []menuEntry
	idx     int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		entries: []menuEntry{
			{label: "Log in", about: "Continue with an existing account", page: pageLogin},
			{label: "Register", about: "Free plan, 5 analyses every 30 days", page: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.idx = max(m.idx-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.idx = min(m.idx+1, len(m.entries)-1)
	case key.Matches(keyMsg, keys.enter):
		page := m.entries[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == m.idx {
				return okStyle
			}
			return lipgloss.NewStyle()
		})
	for i, e := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		t.Row(cursor, e.label, labelStyle.Render(e.about))
	}

	body := "Instant investment analysis of residential properties.\n" + t.String()
	return renderPage("PROPERTY ANALYZER", body, "enter: select │ ↑/↓: navigate │ v: version")
}
