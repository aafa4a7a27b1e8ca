// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-analyzer/internal/service"
	"github.com/MKhiriev/go-property-analyzer/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenDashboard screen = iota
	screenForm
	screenResult
	screenHistory
	screenRecord
	screenUpgrade
)

const (
	historyPageSize = 20
	statusTimeout   = 3 * time.Second

	defaultViewportWidth  = 100
	defaultViewportHeight = 20
	// title, dividers and hotkeys around the viewport
	pageChromeHeight = 8
)

type dashboardAction struct {
	label string
	run   func(m mainLoopModel) (tea.Model, tea.Cmd)
}

var dashboardActions = []dashboardAction{
	{"Analyze a property", mainLoopModel.openForm},
	{"Analysis history", mainLoopModel.openHistory},
	{"Upgrade to premium", mainLoopModel.openUpgrade},
	{"Refresh usage", mainLoopModel.refresh},
	{"Log out", mainLoopModel.doLogout},
}

var errNothingToCopy = errors.New("nothing to copy")

type mainLoopModel struct {
	ctx    context.Context
	client service.ClientService
	now    func() time.Time

	screen  screen
	menuIdx int

	usage       models.UsageSummary
	status      models.ServiceStatus
	statusKnown bool

	form      propertyFormModel
	analyzing bool
	spinner   spinner.Model
	result    *models.AnalysisResult

	history        []models.AnalysisRecord
	historyIdx     int
	historyLoading bool

	viewport   viewport.Model
	copySource string

	upgrading bool

	notice string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, client service.ClientService, usage models.UsageSummary) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		client:   client,
		now:      time.Now,
		usage:    usage,
		form:     newPropertyForm(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadUsage(), m.cmdLoadStatus())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(msg.Height-pageChromeHeight, 5)
		return m, nil
	case usageLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.usage = msg.usage
		return m, nil
	case statusLoadedMsg:
		m.statusKnown = true
		if msg.err != nil {
			m.status = models.ServiceStatus{}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = msg.status
		return m, nil
	case analysisDoneMsg:
		m.analyzing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			if errors.Is(msg.err, service.ErrUsageLimitReached) {
				return m, m.cmdLoadUsage()
			}
			return m, nil
		}
		m.errMsg = ""
		m.result = &msg.result
		m.usage = msg.result.Usage
		m.showText(renderResult(msg.result), msg.result.Text)
		m.screen = screenResult
		return m, nil
	case historyLoadedMsg:
		m.historyLoading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.history = msg.records
		m.historyIdx = 0
		return m, nil
	case upgradeDoneMsg:
		m.upgrading = false
		m.screen = screenDashboard
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.usage = msg.usage
		m.notice = "Upgraded to Premium!"
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.notice = "Copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(keyMsg)
	case screenResult, screenRecord:
		return m.updateText(keyMsg)
	case screenHistory:
		return m.updateHistory(keyMsg)
	case screenUpgrade:
		return m.updateUpgrade(keyMsg)
	}
	return m.updateDashboard(keyMsg)
}

func (m mainLoopModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(msg, keys.down):
		if m.menuIdx < len(dashboardActions)-1 {
			m.menuIdx++
		}
	case key.Matches(msg, keys.enter):
		return dashboardActions[m.menuIdx].run(m)
	case key.Matches(msg, keys.analyze):
		return m.openForm()
	case key.Matches(msg, keys.history):
		return m.openHistory()
	case key.Matches(msg, keys.upgrade):
		return m.openUpgrade()
	case key.Matches(msg, keys.refresh):
		return m.refresh()
	case key.Matches(msg, keys.logout):
		return m.doLogout()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) openForm() (tea.Model, tea.Cmd) {
	if limitReached(m.usage, m.now()) {
		m.errMsg = humanizeError(service.ErrUsageLimitReached)
		return m, nil
	}
	m.errMsg = ""
	m.screen = screenForm
	return m, nil
}

func (m mainLoopModel) openHistory() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.screen = screenHistory
	m.historyLoading = true
	return m, m.cmdLoadHistory()
}

func (m mainLoopModel) openUpgrade() (tea.Model, tea.Cmd) {
	if m.usage.Plan == models.PlanPremium {
		m.notice = "You are already on the premium plan"
		return m, cmdClearStatus()
	}
	m.errMsg = ""
	m.screen = screenUpgrade
	return m, nil
}

func (m mainLoopModel) refresh() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.statusKnown = false
	return m, tea.Batch(m.cmdLoadUsage(), m.cmdLoadStatus())
}

func (m mainLoopModel) doLogout() (tea.Model, tea.Cmd) {
	m.client.Logout()
	m.logout = true
	return m, tea.Quit
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.analyzing {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.screen = screenDashboard
		return m, nil
	case key.Matches(msg, keys.enter):
		req, err := m.form.request()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.analyzing = true
		return m, tea.Batch(m.cmdAnalyze(req), m.spinner.Tick)
	}

	cmd := m.form.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.screen == screenRecord {
			m.screen = screenHistory
		} else {
			m.screen = screenDashboard
		}
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.copySource)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.errMsg = ""
		m.screen = screenDashboard
	case key.Matches(msg, keys.up):
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case key.Matches(msg, keys.down):
		if m.historyIdx < len(m.history)-1 {
			m.historyIdx++
		}
	case key.Matches(msg, keys.refresh):
		if m.historyLoading {
			return m, nil
		}
		m.historyLoading = true
		return m, m.cmdLoadHistory()
	case key.Matches(msg, keys.enter):
		if m.historyIdx < 0 || m.historyIdx >= len(m.history) {
			return m, nil
		}
		rec := m.history[m.historyIdx]
		m.showText(renderRecord(rec), rec.AnalysisText)
		m.screen = screenRecord
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateUpgrade(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.upgrading {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.yes):
		m.upgrading = true
		return m, m.cmdUpgrade()
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.screen = screenDashboard
	}
	return m, nil
}

// showText loads content into the viewport; copyText is what "c" copies.
func (m *mainLoopModel) showText(content, copyText string) {
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.copySource = copyText
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenForm:
		return m.viewForm()
	case screenResult:
		return renderPage("ANALYSIS RESULT", m.withNotice(m.viewport.View()), "↑/↓: scroll │ c: copy analysis │ esc: back")
	case screenRecord:
		return renderPage("SAVED ANALYSIS", m.withNotice(m.viewport.View()), "↑/↓: scroll │ c: copy analysis │ esc: back")
	case screenHistory:
		return m.viewHistory()
	case screenUpgrade:
		return renderPage("UPGRADE", upgradeConfirmView(m.upgrading), "y: upgrade │ n/esc: back")
	}
	return m.viewDashboard()
}

func (m mainLoopModel) viewDashboard() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Logged in as: %s\n", valueOrDash(m.usage.Username)))
	b.WriteString(fmt.Sprintf("Plan: %s\n", planLabel(m.usage.Plan)))
	b.WriteString(usageLine(m.usage))
	b.WriteString("\n")
	if line := resetLine(m.usage, m.now()); line != "" {
		b.WriteString(labelStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(statusLine(m.status, m.statusKnown))
	b.WriteString("\n\n")

	if limitReached(m.usage, m.now()) {
		b.WriteString(errorStyle.Render("🚫 Usage Limit Reached"))
		b.WriteString("\nYou've used all your free analyses for this month. Upgrade to premium for unlimited access.\n\n")
	}

	for i, action := range dashboardActions {
		cursor := "  "
		if i == m.menuIdx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(action.label)
		b.WriteString("\n")
	}

	return renderPage(
		"DASHBOARD",
		m.withNotice(strings.TrimRight(b.String(), "\n")),
		"enter: select │ a: analyze │ h: history │ u: upgrade │ r: refresh │ l: log out │ q: quit",
	)
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	b.WriteString("\n\n")
	if m.analyzing {
		b.WriteString(m.spinner.View())
		b.WriteString(" AI is analyzing your property...")
	} else {
		b.WriteString("[🚀 Analyze Property with AI]")
	}

	return renderPage(
		"ANALYZE PROPERTY",
		m.withNotice(b.String()),
		"tab/↓: next │ shift+tab/↑: prev │ ←/→: change option │ enter: analyze │ esc: back",
	)
}

func (m mainLoopModel) viewHistory() string {
	var b strings.Builder

	switch {
	case m.historyLoading:
		b.WriteString("Loading history...")
	case len(m.history) == 0 && m.errMsg == "":
		b.WriteString("No saved analyses yet")
	case len(m.history) > 0:
		b.WriteString("  Date              │ Address                        │ Price         │ Yield\n")
		b.WriteString("────────────────────┼────────────────────────────────┼───────────────┼────────────\n")
		for i, rec := range m.history {
			cursor := " "
			if i == m.historyIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-17s │ %-30s │ %-13s │ %s\n",
				cursor,
				rec.CreatedAt.Local().Format(dateLayout),
				fitText(valueOrDash(rec.Address), 30),
				formatDollars(float64(rec.PurchasePrice)),
				fitText(rec.Yield, 12),
			))
		}
	}

	return renderPage(
		"ANALYSIS HISTORY",
		m.withNotice(strings.TrimRight(b.String(), "\n")),
		"enter: open │ ↑/↓: navigate │ r: reload │ esc: back",
	)
}

// withNotice appends the status and error lines under content.
func (m mainLoopModel) withNotice(content string) string {
	if m.notice == "" && m.errMsg == "" {
		return content
	}
	var b strings.Builder
	b.WriteString(content)
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}

func (m mainLoopModel) cmdLoadUsage() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		usage, err := client.Usage(ctx)
		return usageLoadedMsg{usage: usage, err: err}
	}
}

func (m mainLoopModel) cmdLoadStatus() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		status, err := client.Status(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m mainLoopModel) cmdAnalyze(req models.AnalysisRequest) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		result, err := client.Analyze(ctx, req)
		return analysisDoneMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		records, err := client.History(ctx, historyPageSize)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) cmdUpgrade() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		usage, err := client.Upgrade(ctx)
		return upgradeDoneMsg{usage: usage, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(text) == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
